package vendors

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// imageURL resolves the product image through the anchor chain: vendor
// container → og:image → twitter:image → JSON-LD product image → generic
// product-like <img> heuristic.
func imageURL(p *Page, containerSelectors ...string) string {
	doc := p.Doc()

	if doc != nil {
		for _, sel := range containerSelectors {
			img := doc.Find(sel).Find("img").First()
			if img.Length() == 0 {
				img = doc.Find(sel).Filter("img").First()
			}
			if src := imgSrc(img); src != "" {
				return resolveURL(p.Origin, src)
			}
		}
	}

	if p.Meta.Image != "" {
		return resolveURL(p.Origin, p.Meta.Image)
	}

	if doc != nil {
		if tw, ok := doc.Find(`meta[name="twitter:image"], meta[name="twitter:image:src"]`).First().Attr("content"); ok && tw != "" {
			return resolveURL(p.Origin, tw)
		}
		if ld := jsonLDProductImage(doc); ld != "" {
			return resolveURL(p.Origin, ld)
		}
		if guess := productLikeImage(doc); guess != "" {
			return resolveURL(p.Origin, guess)
		}
	}

	return ""
}

// imgSrc reads the usual src attributes, including lazy-load variants.
func imgSrc(img *goquery.Selection) string {
	if img == nil || img.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"src", "data-src", "data-lazy-src", "data-original"} {
		if v, ok := img.Attr(attr); ok && v != "" && !strings.HasPrefix(v, "data:") {
			return v
		}
	}
	return ""
}

// jsonLDProductImage walks every JSON-LD block looking for a Product node
// with an image. Vendors embed these inconsistently: image may be a string,
// an array, or an ImageObject.
func jsonLDProductImage(doc *goquery.Document) string {
	var found string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		if img := productImageFrom(data); img != "" {
			found = img
			return false
		}
		return true
	})
	return found
}

func productImageFrom(data any) string {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			if img := productImageFrom(item); img != "" {
				return img
			}
		}
	case map[string]any:
		typ, _ := v["@type"].(string)
		if strings.EqualFold(typ, "Product") {
			if img := imageValue(v["image"]); img != "" {
				return img
			}
		}
		// @graph wrappers and nested mainEntity nodes.
		for _, key := range []string{"@graph", "mainEntity"} {
			if nested, ok := v[key]; ok {
				if img := productImageFrom(nested); img != "" {
					return img
				}
			}
		}
	}
	return ""
}

func imageValue(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case []any:
		for _, item := range v {
			if s := imageValue(item); s != "" {
				return s
			}
		}
	case map[string]any:
		if u, ok := v["url"].(string); ok {
			return u
		}
		if u, ok := v["contentUrl"].(string); ok {
			return u
		}
	}
	return ""
}

// productLikeImage is the last-resort heuristic: the first <img> whose
// attributes look like a product shot and not chrome (logos, sprites, icons).
func productLikeImage(doc *goquery.Document) string {
	var found string
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := imgSrc(img)
		if src == "" {
			return true
		}
		class, _ := img.Attr("class")
		id, _ := img.Attr("id")
		alt, _ := img.Attr("alt")
		hay := strings.ToLower(src + " " + class + " " + id + " " + alt)

		for _, bad := range []string{"logo", "sprite", "icon", "badge", "banner", "pixel", "avatar"} {
			if strings.Contains(hay, bad) {
				return true
			}
		}
		for _, good := range []string{"product", "item", "main-image", "gallery", "hero", "zoom"} {
			if strings.Contains(hay, good) {
				found = src
				return false
			}
		}
		return true
	})
	return found
}
