package wcagref

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
)

// CriterionRecord is a stored success criterion merged with the URL of the
// recommendation it belongs to.
type CriterionRecord struct {
	ID                string `json:"id" yaml:"id"`
	Handle            string `json:"handle" yaml:"handle"`
	QuickReference    string `json:"quickReference" yaml:"quickReference"`
	DetailedReference string `json:"detailedReference" yaml:"detailedReference"`
	Level             Level  `json:"level" yaml:"level"`
	WCAGURL           string `json:"wcagUrl" yaml:"wcagUrl"`
}

// Link returns the fragment URL pointing at the criterion.
func (r *CriterionRecord) Link() string {
	return r.WCAGURL + "#" + r.ID
}

// TechniqueRecord is a stored technique merged with the technique index URL
// and its group metadata. Exactly one of GroupID (2.1, 2.2) and GroupPage
// (2.0) is set.
type TechniqueRecord struct {
	Text          string `json:"text" yaml:"text"`
	TechniquesURL string `json:"techniquesUrl" yaml:"techniquesUrl"`
	GroupID       string `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	GroupPage     string `json:"groupPage,omitempty" yaml:"groupPage,omitempty"`
}

// CriterionFilter represents a filter for FindCriteria.
// Zero values match everything.
type CriterionFilter struct {
	Chapter int   `json:"chapter"`
	Section int   `json:"section"`
	Level   Level `json:"level"`
}

// TechniqueEntry pairs a technique code with its record.
type TechniqueEntry struct {
	Code   string           `json:"code" yaml:"code"`
	Record *TechniqueRecord `json:"record" yaml:"record"`
}

// ReferenceService represents the WCAG lookup operations.
// Implementations never block and are safe for concurrent use.
type ReferenceService interface {
	// CriterionData returns the criterion at chapter.section.subsection.
	// Fails with ErrInvalidVersion, ErrChapterNotFound, ErrSectionNotFound or
	// ErrSubsectionNotFound, checked in that order.
	CriterionData(version string, chapter, section, subsection int) (*CriterionRecord, error)

	// LinkToCriterion returns the recommendation URL with the criterion anchor.
	LinkToCriterion(version string, chapter, section, subsection int) (string, error)

	// TechniqueData returns the technique with the given code.
	// Fails with ErrInvalidVersion or ErrTechniqueNotFound.
	TechniqueData(version, technique string) (*TechniqueRecord, error)

	// LinkToTechnique returns the URL of the technique's documentation page.
	LinkToTechnique(version, technique string) (string, error)

	// FindCriteria returns criteria matching the filter in coordinate order.
	FindCriteria(version string, filter CriterionFilter) ([]*CriterionRecord, error)

	// FindTechniques returns the techniques of a group, or of all groups when
	// group is empty, ordered by group prefix and ordinal.
	FindTechniques(version, group string) ([]*TechniqueEntry, error)
}

// Ensure Reference implements ReferenceService at compile time.
var _ ReferenceService = (*Reference)(nil)

// Reference resolves lookups against an in-memory dataset.
// The dataset is never modified; every call returns freshly built records.
type Reference struct {
	dataset *Dataset
}

// NewReference returns a Reference over ds. The caller must not modify ds
// afterwards.
func NewReference(ds *Dataset) *Reference {
	return &Reference{dataset: ds}
}

func (r *Reference) partition(version string) (*Partition, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return nil, err
	}
	p, ok := r.dataset.Partition(v)
	if !ok {
		return nil, Errorf(ENOTFOUND, "dataset has no partition for WCAG %s", v)
	}
	return p, nil
}

// CriterionData returns the criterion at chapter.section.subsection.
func (r *Reference) CriterionData(version string, chapter, section, subsection int) (*CriterionRecord, error) {
	p, err := r.partition(version)
	if err != nil {
		return nil, err
	}

	principle, ok := p.Principles[chapter]
	if !ok {
		return nil, ErrChapterNotFound
	}
	guideline, ok := principle.Guidelines[section]
	if !ok {
		return nil, ErrSectionNotFound
	}
	sc, ok := guideline.SuccessCriteria[subsection]
	if !ok {
		return nil, ErrSubsectionNotFound
	}

	return newCriterionRecord(p, sc), nil
}

// LinkToCriterion returns the recommendation URL with the criterion anchor.
func (r *Reference) LinkToCriterion(version string, chapter, section, subsection int) (string, error) {
	rec, err := r.CriterionData(version, chapter, section, subsection)
	if err != nil {
		return "", err
	}
	return rec.Link(), nil
}

// TechniqueData returns the technique with the given code.
// An unknown group prefix and an unknown code within a known group both
// yield ErrTechniqueNotFound.
func (r *Reference) TechniqueData(version, technique string) (*TechniqueRecord, error) {
	p, err := r.partition(version)
	if err != nil {
		return nil, err
	}

	group, ok := p.Techniques.Groups[TechniquePrefix(technique)]
	if !ok {
		return nil, ErrTechniqueNotFound
	}
	t, ok := group.Techniques[technique]
	if !ok {
		return nil, ErrTechniqueNotFound
	}

	return newTechniqueRecord(p, group, t), nil
}

// LinkToTechnique returns the URL of the technique's documentation page.
// WCAG 2.0 pages live in a flat namespace; 2.1 and 2.2 pages live under
// the group ID.
func (r *Reference) LinkToTechnique(version, technique string) (string, error) {
	rec, err := r.TechniqueData(version, technique)
	if err != nil {
		return "", err
	}

	var section string
	if Version(version).GroupedTechniques() {
		section = rec.GroupID + "/"
	}
	return rec.TechniquesURL + section + technique + ".html", nil
}

// FindCriteria returns criteria matching the filter in coordinate order.
func (r *Reference) FindCriteria(version string, filter CriterionFilter) ([]*CriterionRecord, error) {
	p, err := r.partition(version)
	if err != nil {
		return nil, err
	}

	var records []*CriterionRecord
	p.Criteria(func(c Coordinates, sc *SuccessCriterion) {
		if filter.Chapter != 0 && c.Chapter != filter.Chapter {
			return
		}
		if filter.Section != 0 && c.Section != filter.Section {
			return
		}
		if filter.Level != 0 && sc.Level != filter.Level {
			return
		}
		records = append(records, newCriterionRecord(p, sc))
	})
	return records, nil
}

// FindTechniques returns the techniques of a group, or of all groups when
// group is empty.
func (r *Reference) FindTechniques(version, group string) ([]*TechniqueEntry, error) {
	p, err := r.partition(version)
	if err != nil {
		return nil, err
	}

	keys := slices.Sorted(maps.Keys(p.Techniques.Groups))
	if group != "" {
		if _, ok := p.Techniques.Groups[group]; !ok {
			return nil, ErrTechniqueNotFound
		}
		keys = []string{group}
	}

	var entries []*TechniqueEntry
	for _, key := range keys {
		g := p.Techniques.Groups[key]
		codes := slices.SortedFunc(maps.Keys(g.Techniques), compareTechniqueCodes)
		for _, code := range codes {
			entries = append(entries, &TechniqueEntry{
				Code:   code,
				Record: newTechniqueRecord(p, g, g.Techniques[code]),
			})
		}
	}
	return entries, nil
}

func newCriterionRecord(p *Partition, sc *SuccessCriterion) *CriterionRecord {
	return &CriterionRecord{
		ID:                sc.ID,
		Handle:            sc.Handle,
		QuickReference:    sc.QuickReference,
		DetailedReference: sc.DetailedReference,
		Level:             sc.Level,
		WCAGURL:           p.URL,
	}
}

func newTechniqueRecord(p *Partition, g *TechniqueGroup, t *Technique) *TechniqueRecord {
	return &TechniqueRecord{
		Text:          t.Text,
		TechniquesURL: p.Techniques.URL,
		GroupID:       g.ID,
		GroupPage:     g.OnePage,
	}
}

// compareTechniqueCodes orders codes sharing a prefix by their ordinal so
// that G2 sorts before G10.
func compareTechniqueCodes(a, b string) int {
	na, errA := strconv.Atoi(a[len(TechniquePrefix(a)):])
	nb, errB := strconv.Atoi(b[len(TechniquePrefix(b)):])
	if errA != nil || errB != nil {
		return cmp.Compare(a, b)
	}
	return cmp.Or(cmp.Compare(TechniquePrefix(a), TechniquePrefix(b)), cmp.Compare(na, nb))
}
