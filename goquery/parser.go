// Package goquery parses W3C WCAG pages into reference data using goquery.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wcagref"
)

// Ensure Parser implements wcagref.PageParser at compile time.
var _ wcagref.PageParser = (*Parser)(nil)

// Parser extracts reference data from WCAG recommendation and techniques pages.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseRecommendation extracts principles from a recommendation page.
func (p *Parser) ParseRecommendation(v wcagref.Version, pageURL, html string) (map[int]*wcagref.Principle, error) {
	doc, base, err := parse(pageURL, html)
	if err != nil {
		return nil, err
	}

	var principles map[int]*wcagref.Principle
	switch v {
	case wcagref.Version20:
		principles, err = parseRecommendation20(doc, base)
	case wcagref.Version21, wcagref.Version22:
		principles, err = parseRecommendation2x(doc, base, v)
	default:
		return nil, wcagref.ErrInvalidVersion
	}
	if err != nil {
		return nil, err
	}

	if len(principles) == 0 {
		return nil, wcagref.Errorf(wcagref.EINVALID, "no principles found in %s", pageURL)
	}
	return principles, nil
}

// ParseTechniques extracts technique groups from a techniques index page.
func (p *Parser) ParseTechniques(v wcagref.Version, pageURL, html string) (map[string]*wcagref.TechniqueGroup, error) {
	doc, base, err := parse(pageURL, html)
	if err != nil {
		return nil, err
	}

	var groups map[string]*wcagref.TechniqueGroup
	switch v {
	case wcagref.Version20:
		groups = parseTechniques20(doc, base)
	case wcagref.Version21, wcagref.Version22:
		groups = parseTechniques2x(doc)
	default:
		return nil, wcagref.ErrInvalidVersion
	}

	if len(groups) == 0 {
		return nil, wcagref.Errorf(wcagref.EINVALID, "no technique groups found in %s", pageURL)
	}
	return groups, nil
}

func parse(pageURL, html string) (*goquery.Document, *url.URL, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, nil, wcagref.Errorf(wcagref.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, wcagref.Errorf(wcagref.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, base, nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// innerText collapses whitespace in the selection's text content.
func innerText(sel *goquery.Selection) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(sel.Text(), " "))
}

// headingText returns a heading's text without its "§" self-link marker.
func headingText(sel *goquery.Selection) string {
	return strings.TrimSpace(strings.ReplaceAll(innerText(sel), "§", ""))
}

// href returns the first matching link resolved against base.
func href(sel *goquery.Selection, selector string, base *url.URL) string {
	raw, ok := sel.Find(selector).First().Attr("href")
	if !ok {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
