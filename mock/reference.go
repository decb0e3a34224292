package mock

import "github.com/fwojciec/wcagref"

var _ wcagref.ReferenceService = (*ReferenceService)(nil)

// ReferenceService is a mock implementation of wcagref.ReferenceService.
type ReferenceService struct {
	CriterionDataFn   func(version string, chapter, section, subsection int) (*wcagref.CriterionRecord, error)
	LinkToCriterionFn func(version string, chapter, section, subsection int) (string, error)
	TechniqueDataFn   func(version, technique string) (*wcagref.TechniqueRecord, error)
	LinkToTechniqueFn func(version, technique string) (string, error)
	FindCriteriaFn    func(version string, filter wcagref.CriterionFilter) ([]*wcagref.CriterionRecord, error)
	FindTechniquesFn  func(version, group string) ([]*wcagref.TechniqueEntry, error)
}

func (s *ReferenceService) CriterionData(version string, chapter, section, subsection int) (*wcagref.CriterionRecord, error) {
	return s.CriterionDataFn(version, chapter, section, subsection)
}

func (s *ReferenceService) LinkToCriterion(version string, chapter, section, subsection int) (string, error) {
	return s.LinkToCriterionFn(version, chapter, section, subsection)
}

func (s *ReferenceService) TechniqueData(version, technique string) (*wcagref.TechniqueRecord, error) {
	return s.TechniqueDataFn(version, technique)
}

func (s *ReferenceService) LinkToTechnique(version, technique string) (string, error) {
	return s.LinkToTechniqueFn(version, technique)
}

func (s *ReferenceService) FindCriteria(version string, filter wcagref.CriterionFilter) ([]*wcagref.CriterionRecord, error) {
	return s.FindCriteriaFn(version, filter)
}

func (s *ReferenceService) FindTechniques(version, group string) ([]*wcagref.TechniqueEntry, error) {
	return s.FindTechniquesFn(version, group)
}
