package wcagref

import (
	"context"
	"maps"
	"slices"
	"strings"
)

// Dataset is the immutable, version-keyed WCAG reference data.
// It is built once by the offline generator and loaded once per process.
type Dataset struct {
	Partitions map[Version]*Partition `json:"partitions"`
}

// NewDataset builds a Dataset from partitions, keyed by each partition's version.
func NewDataset(partitions ...*Partition) *Dataset {
	ds := &Dataset{Partitions: make(map[Version]*Partition, len(partitions))}
	for _, p := range partitions {
		ds.Partitions[p.Version] = p
	}
	return ds
}

// Partition returns the partition for a version.
func (ds *Dataset) Partition(v Version) (*Partition, bool) {
	if ds == nil {
		return nil, false
	}
	p, ok := ds.Partitions[v]
	return p, ok
}

// Versions returns the versions present in the dataset in ascending order.
func (ds *Dataset) Versions() []Version {
	return slices.Sorted(maps.Keys(ds.Partitions))
}

// Validate returns an error if any partition is missing, mislabeled or malformed.
func (ds *Dataset) Validate() error {
	if ds == nil || len(ds.Partitions) == 0 {
		return Errorf(EINVALID, "dataset has no partitions")
	}
	for v, p := range ds.Partitions {
		if p == nil {
			return Errorf(EINVALID, "partition %q is empty", v)
		}
		if p.Version != v {
			return Errorf(EINVALID, "partition keyed %q declares version %q", v, p.Version)
		}
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Partition holds the reference data for one WCAG version.
type Partition struct {
	Version    Version            `json:"version"`
	URL        string             `json:"url"` // normative recommendation page
	Principles map[int]*Principle `json:"principles"`
	Techniques TechniqueIndex     `json:"techniques"`
}

// Validate returns an error if the partition contains invalid fields.
func (p *Partition) Validate() error {
	if !p.Version.Valid() {
		return Errorf(EINVALID, "partition version %q not supported", p.Version)
	}
	if p.URL == "" {
		return Errorf(EINVALID, "partition %s URL required", p.Version)
	}
	if len(p.Principles) == 0 {
		return Errorf(EINVALID, "partition %s has no principles", p.Version)
	}
	for chapter, principle := range p.Principles {
		if chapter < 1 || principle == nil {
			return Errorf(EINVALID, "partition %s: invalid principle %d", p.Version, chapter)
		}
		for section, guideline := range principle.Guidelines {
			if section < 1 || guideline == nil {
				return Errorf(EINVALID, "partition %s: invalid guideline %d.%d", p.Version, chapter, section)
			}
			for subsection, sc := range guideline.SuccessCriteria {
				if subsection < 1 || sc == nil {
					return Errorf(EINVALID, "partition %s: invalid criterion %d.%d.%d", p.Version, chapter, section, subsection)
				}
				if err := sc.Validate(); err != nil {
					return err
				}
			}
		}
	}
	return p.Techniques.validate(p.Version)
}

// Criteria calls fn for every success criterion in coordinate order.
func (p *Partition) Criteria(fn func(c Coordinates, sc *SuccessCriterion)) {
	for _, chapter := range slices.Sorted(maps.Keys(p.Principles)) {
		principle := p.Principles[chapter]
		for _, section := range slices.Sorted(maps.Keys(principle.Guidelines)) {
			guideline := principle.Guidelines[section]
			for _, subsection := range slices.Sorted(maps.Keys(guideline.SuccessCriteria)) {
				fn(Coordinates{chapter, section, subsection}, guideline.SuccessCriteria[subsection])
			}
		}
	}
}

// Principle is a top-level WCAG grouping (Perceivable, Operable, ...).
type Principle struct {
	ID         string             `json:"id"`
	Text       string             `json:"text"`
	Guidelines map[int]*Guideline `json:"guidelines"`
}

// Guideline is a subgrouping under a principle (e.g. 2.4 Navigable).
type Guideline struct {
	ID                string                    `json:"id"`
	Text              string                    `json:"text"`
	DetailedReference string                    `json:"detailedReference,omitempty"` // WCAG 2.0 only
	SuccessCriteria   map[int]*SuccessCriterion `json:"successCriteria"`
}

// SuccessCriterion is an individually testable conformance requirement.
type SuccessCriterion struct {
	ID                string `json:"id"`     // anchor in the recommendation page
	Handle            string `json:"handle"` // e.g. "2.1.1 Keyboard"
	QuickReference    string `json:"quickReference"`
	DetailedReference string `json:"detailedReference"`
	Level             Level  `json:"level"`
}

// Validate returns an error if the criterion contains invalid fields.
func (sc *SuccessCriterion) Validate() error {
	if sc.ID == "" {
		return Errorf(EINVALID, "criterion %q ID required", sc.Handle)
	}
	if sc.Handle == "" {
		return Errorf(EINVALID, "criterion %q handle required", sc.ID)
	}
	if !sc.Level.Valid() {
		return Errorf(EINVALID, "criterion %q has invalid level %d", sc.ID, sc.Level)
	}
	return nil
}

// TechniqueIndex lists the technique groups of a version.
type TechniqueIndex struct {
	URL    string                     `json:"url"` // techniques index page
	Groups map[string]*TechniqueGroup `json:"groups"`
}

func (idx *TechniqueIndex) validate(v Version) error {
	if idx.URL == "" {
		return Errorf(EINVALID, "partition %s techniques URL required", v)
	}
	for key, group := range idx.Groups {
		if group == nil {
			return Errorf(EINVALID, "partition %s: technique group %q is empty", v, key)
		}
		if v.GroupedTechniques() && group.ID == "" {
			return Errorf(EINVALID, "partition %s: technique group %q ID required", v, key)
		}
		if !v.GroupedTechniques() && group.OnePage == "" {
			return Errorf(EINVALID, "partition %s: technique group %q page required", v, key)
		}
		for code := range group.Techniques {
			if TechniquePrefix(code) != key {
				return Errorf(EINVALID, "partition %s: technique %q filed under group %q", v, code, key)
			}
		}
	}
	return nil
}

// TechniqueGroup groups techniques by technology (General, HTML, ARIA, ...).
// WCAG 2.0 groups carry OnePage; later versions carry ID instead.
type TechniqueGroup struct {
	ID         string                `json:"id,omitempty"`
	Text       string                `json:"text"`
	OnePage    string                `json:"onePage,omitempty"`
	Techniques map[string]*Technique `json:"techniques"`
}

// Technique is a documented method for satisfying success criteria.
type Technique struct {
	Text string `json:"text"`
}

// TechniquePrefix returns the group prefix of a technique code by removing
// every digit, e.g. "ARIA12" becomes "ARIA".
func TechniquePrefix(code string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, code)
}

// DatasetLoader loads a complete dataset from storage.
type DatasetLoader interface {
	// LoadDataset reads and validates the dataset.
	// Returns ENOTFOUND if the storage holds no dataset.
	LoadDataset(ctx context.Context) (*Dataset, error)
}

// DatasetWriter persists a complete dataset, replacing any previous one.
type DatasetWriter interface {
	SaveDataset(ctx context.Context, ds *Dataset) error
}
