package goquery

import (
	"net/url"
	"path"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wcagref"
)

var techniqueCodeRe = regexp.MustCompile(`^(\w+):`)

// parseTechniques20 handles the WCAG 2.0 techniques table of contents,
// where every group is a list item holding a link to its one-page
// rendition followed by a nested list of techniques.
func parseTechniques20(doc *goquery.Document, base *url.URL) map[string]*wcagref.TechniqueGroup {
	groups := make(map[string]*wcagref.TechniqueGroup)

	doc.Find(".toc li > ul").Each(func(_ int, list *goquery.Selection) {
		item := list.Parent()

		text := innerText(item.Contents().First())
		if text == "" {
			text = innerText(item.Find("a").First())
		}

		group := &wcagref.TechniqueGroup{
			Text:       text,
			OnePage:    onePage(item, base),
			Techniques: make(map[string]*wcagref.Technique),
		}

		if key := collectTechniques(list, group); key != "" {
			groups[key] = group
		}
	})

	return groups
}

// parseTechniques2x handles the WCAG 2.1 and 2.2 techniques index, where
// every group is an h3 heading inside #toc followed by its list.
func parseTechniques2x(doc *goquery.Document) map[string]*wcagref.TechniqueGroup {
	groups := make(map[string]*wcagref.TechniqueGroup)

	doc.Find("#toc h3").Each(func(_ int, heading *goquery.Selection) {
		id, _ := heading.Attr("id")
		group := &wcagref.TechniqueGroup{
			ID:         id,
			Text:       headingText(heading),
			Techniques: make(map[string]*wcagref.Technique),
		}

		if key := collectTechniques(heading.Next(), group); key != "" {
			groups[key] = group
		}
	})

	return groups
}

// collectTechniques adds every coded list item to group and returns the
// group key, which is the prefix of the first technique code.
func collectTechniques(list *goquery.Selection, group *wcagref.TechniqueGroup) string {
	var key string
	list.Find("li").Each(func(_ int, item *goquery.Selection) {
		text := innerText(item)
		m := techniqueCodeRe.FindStringSubmatch(text)
		if m == nil {
			return
		}
		if key == "" {
			key = wcagref.TechniquePrefix(m[1])
		}
		group.Techniques[m[1]] = &wcagref.Technique{Text: text}
	})
	return key
}

// onePage returns the file name of the group's one-page rendition.
func onePage(item *goquery.Selection, base *url.URL) string {
	link := href(item, "a", base)
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}
