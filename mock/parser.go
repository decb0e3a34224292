package mock

import "github.com/fwojciec/wcagref"

var _ wcagref.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of wcagref.PageParser.
type PageParser struct {
	ParseRecommendationFn func(v wcagref.Version, pageURL, html string) (map[int]*wcagref.Principle, error)
	ParseTechniquesFn     func(v wcagref.Version, pageURL, html string) (map[string]*wcagref.TechniqueGroup, error)
}

func (p *PageParser) ParseRecommendation(v wcagref.Version, pageURL, html string) (map[int]*wcagref.Principle, error) {
	return p.ParseRecommendationFn(v, pageURL, html)
}

func (p *PageParser) ParseTechniques(v wcagref.Version, pageURL, html string) (map[string]*wcagref.TechniqueGroup, error) {
	return p.ParseTechniquesFn(v, pageURL, html)
}
