package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wcagref"
)

var (
	principleNumberRe = regexp.MustCompile(`Principle (\d+)`)
	guidelineNumberRe = regexp.MustCompile(`Guideline \d+\.(\d+)`)
	criterionNumberRe = regexp.MustCompile(`^\d+\.\d+\.(\d+)`)
	levelRe           = regexp.MustCompile(`Level (A{1,3})\b`)
	nonDigitRe        = regexp.MustCompile(`\D`)
)

// parseRecommendation20 handles the WCAG 2.0 layout, where principle and
// guideline headings carry the class and their parent element holds the
// nested content.
func parseRecommendation20(doc *goquery.Document, base *url.URL) (map[int]*wcagref.Principle, error) {
	principles := make(map[int]*wcagref.Principle)

	var err error
	doc.Find(".principle").EachWithBreak(func(_ int, node *goquery.Selection) bool {
		principle := &wcagref.Principle{
			ID:         anchorID(node),
			Text:       innerText(node),
			Guidelines: make(map[int]*wcagref.Guideline),
		}

		var chapter int
		if chapter, err = submatchNumber(principleNumberRe, principle.Text, "principle"); err != nil {
			return false
		}

		node.Parent().Find(".guideline").EachWithBreak(func(_ int, gnode *goquery.Selection) bool {
			guideline := &wcagref.Guideline{
				ID:                anchorID(gnode),
				Text:              innerText(gnode.Find("h3").First()),
				DetailedReference: href(gnode, `a[href*="w3.org"]`, base),
				SuccessCriteria:   make(map[int]*wcagref.SuccessCriterion),
			}

			var section int
			if section, err = submatchNumber(guidelineNumberRe, guideline.Text, "guideline"); err != nil {
				return false
			}

			gnode.Parent().Find(".sc").EachWithBreak(func(_ int, scnode *goquery.Selection) bool {
				id, _ := scnode.Attr("id")
				sc := &wcagref.SuccessCriterion{
					ID:                id,
					Handle:            strings.Replace(innerText(scnode.Find(".sc-handle").First()), ":", "", 1),
					QuickReference:    href(scnode, `a[href*="quickref"]`, base),
					DetailedReference: href(scnode, `a[href*="UNDERSTANDING-WCAG20"]`, base),
				}
				err = addCriterion(guideline, sc, innerText(scnode.Find(".sctxt").First()))
				return err == nil
			})
			if err != nil {
				return false
			}

			principle.Guidelines[section] = guideline
			return true
		})
		if err != nil {
			return false
		}

		principles[chapter] = principle
		return true
	})

	return principles, err
}

// parseRecommendation2x handles the WCAG 2.1 and 2.2 layout, where each
// principle, guideline and criterion is a section element carrying the
// class and its own id.
func parseRecommendation2x(doc *goquery.Document, base *url.URL, v wcagref.Version) (map[int]*wcagref.Principle, error) {
	principles := make(map[int]*wcagref.Principle)

	var err error
	doc.Find(".principle").EachWithBreak(func(_ int, pnode *goquery.Selection) bool {
		id, _ := pnode.Attr("id")
		principle := &wcagref.Principle{
			ID:         id,
			Text:       mergeHeading(pnode, "h2"),
			Guidelines: make(map[int]*wcagref.Guideline),
		}

		chapter, convErr := strconv.Atoi(nonDigitRe.ReplaceAllString(pnode.Find("h2 .secno").First().Text(), ""))
		if convErr != nil {
			err = wcagref.Errorf(wcagref.EINVALID, "principle %q has no section number", id)
			return false
		}

		pnode.Find(".guideline").EachWithBreak(func(_ int, gnode *goquery.Selection) bool {
			gid, _ := gnode.Attr("id")
			guideline := &wcagref.Guideline{
				ID:              gid,
				Text:            mergeHeading(gnode, "h3"),
				SuccessCriteria: make(map[int]*wcagref.SuccessCriterion),
			}

			var section int
			if section, err = submatchNumber(guidelineNumberRe, guideline.Text, "guideline"); err != nil {
				return false
			}

			gnode.Find(".sc").EachWithBreak(func(_ int, scnode *goquery.Selection) bool {
				scid, _ := scnode.Attr("id")
				handle := strings.TrimSpace(strings.Replace(headingText(scnode.Find("h4").First()), "Success Criterion ", "", 1))
				sc := &wcagref.SuccessCriterion{
					ID:     scid,
					Handle: handle,
				}
				sc.QuickReference, sc.DetailedReference = criterionReferences(scnode, base, v, scid)
				err = addCriterion(guideline, sc, innerText(scnode.Find(".conformance-level").First()))
				return err == nil
			})
			if err != nil {
				return false
			}

			principle.Guidelines[section] = guideline
			return true
		})
		if err != nil {
			return false
		}

		principles[chapter] = principle
		return true
	})

	return principles, err
}

// criterionReferences returns the quick reference and Understanding URLs.
// WCAG 2.1 links them from the criterion; WCAG 2.2 derives them from the
// criterion id.
func criterionReferences(scnode *goquery.Selection, base *url.URL, v wcagref.Version, id string) (quickRef, detailed string) {
	if v == wcagref.Version22 {
		return "https://www.w3.org/WAI/WCAG22/quickref/#" + id,
			"https://www.w3.org/WAI/WCAG22/Understanding/" + id
	}
	return href(scnode, `a[href*="WCAG21/quickref"]`, base),
		href(scnode, `a[href*="WCAG21/Understanding"]`, base)
}

// addCriterion files sc under its subsection number after deriving its
// level from the conformance text.
func addCriterion(g *wcagref.Guideline, sc *wcagref.SuccessCriterion, conformance string) error {
	m := levelRe.FindStringSubmatch(conformance)
	if m == nil {
		return wcagref.Errorf(wcagref.EINVALID, "criterion %q has no conformance level", sc.Handle)
	}
	sc.Level = wcagref.Level(len(m[1]))

	subsection, err := submatchNumber(criterionNumberRe, sc.Handle, "criterion")
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return err
	}

	g.SuccessCriteria[subsection] = sc
	return nil
}

// mergeHeading joins a container's heading with the paragraph underneath.
func mergeHeading(container *goquery.Selection, heading string) string {
	return headingText(container.Find(heading).First()) + ": " + innerText(container.Find("p").First())
}

func anchorID(sel *goquery.Selection) string {
	id, _ := sel.Find("a").First().Attr("id")
	return id
}

func submatchNumber(re *regexp.Regexp, s, what string) (int, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, wcagref.Errorf(wcagref.EINVALID, "%s %q has no number", what, s)
	}
	return strconv.Atoi(m[1])
}
