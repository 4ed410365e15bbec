package sanitize

import (
	"regexp"
	"strings"
)

// maxFieldLen is the junk-predicate ceiling: a growing-spec value longer than
// this is a swallowed paragraph, not a spec.
const maxFieldLen = 120

var (
	reCSSPattern = regexp.MustCompile(`[-A-Za-z][-\w]*\s*:\s*[^;{}\n]{1,80};`)
	rePixelUnit  = regexp.MustCompile(`\b\d+(\.\d+)?px\b`)

	reEntity = regexp.MustCompile(`&#?\w{2,8};`)
	rePhone  = regexp.MustCompile(`\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}`)
)

// boilerplatePhrases are fragments that mark a value as vendor chrome rather
// than horticultural content.
var boilerplatePhrases = []string{
	"add to cart",
	"add to wishlist",
	"shopping cart",
	"checkout",
	"sign in",
	"sign up",
	"log in",
	"free shipping",
	"customer review",
	"write a review",
	"privacy policy",
	"terms of service",
	"javascript",
	"enable cookies",
	"cookie policy",
	"subscribe to our",
	"newsletter",
	"gift card",
	"skip to content",
	"share this",
}

// Valid reports whether a cleaned value is free of code/CSS residue. Values
// containing braces, a property:value; declaration, or a raw pixel unit are
// rejected; spec-type fields failing this are set to null, never truncated
// into nonsense.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	if containsAny(s, "{", "}") {
		return false
	}
	if reCSSPattern.MatchString(s) {
		return false
	}
	if rePixelUnit.MatchString(s) {
		return false
	}
	return true
}

// Junk reports whether a value is boilerplate or otherwise unusable: raw HTML
// entities, phone numbers, known vendor boilerplate phrases, or excessive
// length.
func Junk(s string) bool {
	if len([]rune(s)) > maxFieldLen {
		return true
	}
	if reEntity.MatchString(s) {
		return true
	}
	if rePhone.MatchString(s) {
		return true
	}
	lower := strings.ToLower(s)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
