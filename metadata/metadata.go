// Package metadata pulls generic social metadata out of any HTML page. It is
// the universal fallback layer: it always runs, and its output is the
// guaranteed minimum payload when every later extraction stage fails.
package metadata

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sowtrack/seedscrape/models"
	"github.com/sowtrack/seedscrape/sanitize"
)

// Extract reads Open Graph style tags (og:title, og:description, og:image,
// og:site_name) from raw HTML. goquery walks attributes structurally, so it
// does not matter whether property comes before or after content; a regex
// pass covers pages too malformed for the parser, and <title> is the final
// title fallback.
func Extract(rawHTML string) models.PageMeta {
	meta := fromDocument(rawHTML)

	if meta.Title == "" || meta.Description == "" || meta.Image == "" || meta.SiteName == "" {
		patch := fromRegex(rawHTML)
		if meta.Title == "" {
			meta.Title = patch.Title
		}
		if meta.Description == "" {
			meta.Description = patch.Description
		}
		if meta.Image == "" {
			meta.Image = patch.Image
		}
		if meta.SiteName == "" {
			meta.SiteName = patch.SiteName
		}
	}

	if meta.Title == "" {
		meta.Title = extractTitleTag(rawHTML)
	}

	meta.Title = sanitize.Clean(meta.Title)
	meta.Description = sanitize.Clean(meta.Description)
	meta.SiteName = sanitize.Clean(meta.SiteName)
	meta.Image = strings.TrimSpace(meta.Image)
	return meta
}

func fromDocument(rawHTML string) models.PageMeta {
	meta := models.PageMeta{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return meta
	}

	doc.Find("meta[property]").Each(func(_ int, s *goquery.Selection) {
		prop, _ := s.Attr("property")
		content, _ := s.Attr("content")
		if content == "" {
			return
		}
		switch strings.ToLower(prop) {
		case "og:title":
			if meta.Title == "" {
				meta.Title = content
			}
		case "og:description":
			if meta.Description == "" {
				meta.Description = content
			}
		case "og:image":
			if meta.Image == "" {
				meta.Image = content
			}
		case "og:site_name":
			if meta.SiteName == "" {
				meta.SiteName = content
			}
		}
	})

	return meta
}

// ogPatterns accepts the attribute pair in either order: property first or
// content first.
var ogPatterns = map[string][]*regexp.Regexp{
	"title":       ogPair("og:title"),
	"description": ogPair("og:description"),
	"image":       ogPair("og:image"),
	"site_name":   ogPair("og:site_name"),
}

func ogPair(prop string) []*regexp.Regexp {
	p := regexp.QuoteMeta(prop)
	return []*regexp.Regexp{
		regexp.MustCompile(`(?is)<meta[^>]+property\s*=\s*["']` + p + `["'][^>]+content\s*=\s*["']([^"']+)["']`),
		regexp.MustCompile(`(?is)<meta[^>]+content\s*=\s*["']([^"']+)["'][^>]+property\s*=\s*["']` + p + `["']`),
	}
}

func fromRegex(rawHTML string) models.PageMeta {
	find := func(key string) string {
		for _, re := range ogPatterns[key] {
			if m := re.FindStringSubmatch(rawHTML); m != nil {
				return m[1]
			}
		}
		return ""
	}
	return models.PageMeta{
		Title:       find("title"),
		Description: find("description"),
		Image:       find("image"),
		SiteName:    find("site_name"),
	}
}

// extractTitleTag extracts the <title> content from raw HTML.
func extractTitleTag(rawHTML string) string {
	tokenizer := html.NewTokenizer(bytes.NewReader([]byte(rawHTML)))
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			if string(tn) == "title" {
				if tokenizer.Next() == html.TextToken {
					return strings.TrimSpace(string(tokenizer.Text()))
				}
				return ""
			}
		}
	}
}
