package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/fwojciec/wcagref"
)

// Compile-time interface verification.
var (
	_ wcagref.DatasetLoader = (*DatasetStore)(nil)
	_ wcagref.DatasetWriter = (*DatasetStore)(nil)
)

// DatasetStore implements wcagref.DatasetLoader and wcagref.DatasetWriter
// using SQLite.
type DatasetStore struct {
	db  *DB
	now func() time.Time
}

// NewDatasetStore creates a new DatasetStore.
func NewDatasetStore(db *DB) *DatasetStore {
	return &DatasetStore{db: db, now: time.Now}
}

// SaveDataset replaces every stored partition with the partitions of ds in
// a single transaction.
func (s *DatasetStore) SaveDataset(ctx context.Context, ds *wcagref.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM partitions`); err != nil {
		return fmt.Errorf("failed to clear partitions: %w", err)
	}

	savedAt := s.now().UTC().Format(time.RFC3339)
	for _, v := range ds.Versions() {
		if err := savePartition(ctx, tx, ds.Partitions[v], savedAt); err != nil {
			return fmt.Errorf("failed to save partition %s: %w", v, err)
		}
	}

	return tx.Commit()
}

func savePartition(ctx context.Context, tx *sql.Tx, p *wcagref.Partition, savedAt string) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO partitions (version, url, techniques_url, saved_at)
		VALUES (?, ?, ?, ?)
	`, string(p.Version), p.URL, p.Techniques.URL, savedAt); err != nil {
		return err
	}

	for _, chapter := range slices.Sorted(maps.Keys(p.Principles)) {
		principle := p.Principles[chapter]
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO principles (version, chapter, id, text)
			VALUES (?, ?, ?, ?)
		`, string(p.Version), chapter, principle.ID, principle.Text); err != nil {
			return err
		}

		for _, section := range slices.Sorted(maps.Keys(principle.Guidelines)) {
			g := principle.Guidelines[section]
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO guidelines (version, chapter, section, id, text, detailed_reference)
				VALUES (?, ?, ?, ?, ?, ?)
			`, string(p.Version), chapter, section, g.ID, g.Text, g.DetailedReference); err != nil {
				return err
			}
		}
	}

	var critErr error
	p.Criteria(func(c wcagref.Coordinates, sc *wcagref.SuccessCriterion) {
		if critErr != nil {
			return
		}
		_, critErr = tx.ExecContext(ctx, `
			INSERT INTO criteria (version, chapter, section, subsection, id, handle, quick_reference, detailed_reference, level)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, string(p.Version), c.Chapter, c.Section, c.Subsection, sc.ID, sc.Handle, sc.QuickReference, sc.DetailedReference, int(sc.Level))
	})
	if critErr != nil {
		return critErr
	}

	for _, key := range slices.Sorted(maps.Keys(p.Techniques.Groups)) {
		group := p.Techniques.Groups[key]
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO technique_groups (version, key, id, text, one_page)
			VALUES (?, ?, ?, ?, ?)
		`, string(p.Version), key, group.ID, group.Text, group.OnePage); err != nil {
			return err
		}

		for _, code := range slices.Sorted(maps.Keys(group.Techniques)) {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO techniques (version, code, group_key, text)
				VALUES (?, ?, ?, ?)
			`, string(p.Version), code, key, group.Techniques[code].Text); err != nil {
				return err
			}
		}
	}

	return nil
}

// LoadDataset rebuilds the stored dataset.
// Returns ENOTFOUND if no dataset has been saved.
func (s *DatasetStore) LoadDataset(ctx context.Context) (*wcagref.Dataset, error) {
	ds := &wcagref.Dataset{Partitions: make(map[wcagref.Version]*wcagref.Partition)}

	if err := s.loadPartitions(ctx, ds); err != nil {
		return nil, err
	}
	if len(ds.Partitions) == 0 {
		return nil, wcagref.Errorf(wcagref.ENOTFOUND, "database holds no dataset")
	}
	if err := s.loadPrinciples(ctx, ds); err != nil {
		return nil, err
	}
	if err := s.loadGuidelines(ctx, ds); err != nil {
		return nil, err
	}
	if err := s.loadCriteria(ctx, ds); err != nil {
		return nil, err
	}
	if err := s.loadTechniques(ctx, ds); err != nil {
		return nil, err
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// SavedAt returns when the dataset was last saved.
// Returns ENOTFOUND if no dataset has been saved.
func (s *DatasetStore) SavedAt(ctx context.Context) (time.Time, error) {
	var savedAt sql.NullString
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(saved_at) FROM partitions`).Scan(&savedAt); err != nil {
		return time.Time{}, err
	}
	if !savedAt.Valid {
		return time.Time{}, wcagref.Errorf(wcagref.ENOTFOUND, "database holds no dataset")
	}
	return parseRFC3339(savedAt.String, "saved_at")
}

func (s *DatasetStore) loadPartitions(ctx context.Context, ds *wcagref.Dataset) error {
	rows, err := s.db.QueryContext(ctx, `SELECT version, url, techniques_url FROM partitions`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		p := &wcagref.Partition{
			Principles: make(map[int]*wcagref.Principle),
			Techniques: wcagref.TechniqueIndex{Groups: make(map[string]*wcagref.TechniqueGroup)},
		}
		if err := rows.Scan(&p.Version, &p.URL, &p.Techniques.URL); err != nil {
			return err
		}
		ds.Partitions[p.Version] = p
	}
	return rows.Err()
}

func (s *DatasetStore) loadPrinciples(ctx context.Context, ds *wcagref.Dataset) error {
	rows, err := s.db.QueryContext(ctx, `SELECT version, chapter, id, text FROM principles`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var v wcagref.Version
		var chapter int
		principle := &wcagref.Principle{Guidelines: make(map[int]*wcagref.Guideline)}
		if err := rows.Scan(&v, &chapter, &principle.ID, &principle.Text); err != nil {
			return err
		}
		ds.Partitions[v].Principles[chapter] = principle
	}
	return rows.Err()
}

func (s *DatasetStore) loadGuidelines(ctx context.Context, ds *wcagref.Dataset) error {
	rows, err := s.db.QueryContext(ctx, `SELECT version, chapter, section, id, text, detailed_reference FROM guidelines`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var v wcagref.Version
		var chapter, section int
		g := &wcagref.Guideline{SuccessCriteria: make(map[int]*wcagref.SuccessCriterion)}
		if err := rows.Scan(&v, &chapter, &section, &g.ID, &g.Text, &g.DetailedReference); err != nil {
			return err
		}
		ds.Partitions[v].Principles[chapter].Guidelines[section] = g
	}
	return rows.Err()
}

func (s *DatasetStore) loadCriteria(ctx context.Context, ds *wcagref.Dataset) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT version, chapter, section, subsection, id, handle, quick_reference, detailed_reference, level
		FROM criteria
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var v wcagref.Version
		var c wcagref.Coordinates
		var sc wcagref.SuccessCriterion
		if err := rows.Scan(&v, &c.Chapter, &c.Section, &c.Subsection,
			&sc.ID, &sc.Handle, &sc.QuickReference, &sc.DetailedReference, &sc.Level); err != nil {
			return err
		}
		ds.Partitions[v].Principles[c.Chapter].Guidelines[c.Section].SuccessCriteria[c.Subsection] = &sc
	}
	return rows.Err()
}

func (s *DatasetStore) loadTechniques(ctx context.Context, ds *wcagref.Dataset) error {
	groups, err := s.db.QueryContext(ctx, `SELECT version, key, id, text, one_page FROM technique_groups`)
	if err != nil {
		return err
	}
	defer groups.Close()

	for groups.Next() {
		var v wcagref.Version
		var key string
		g := &wcagref.TechniqueGroup{Techniques: make(map[string]*wcagref.Technique)}
		if err := groups.Scan(&v, &key, &g.ID, &g.Text, &g.OnePage); err != nil {
			return err
		}
		ds.Partitions[v].Techniques.Groups[key] = g
	}
	if err := groups.Err(); err != nil {
		return err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT version, code, group_key, text FROM techniques`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var v wcagref.Version
		var code, key string
		var t wcagref.Technique
		if err := rows.Scan(&v, &code, &key, &t.Text); err != nil {
			return err
		}
		ds.Partitions[v].Techniques.Groups[key].Techniques[code] = &t
	}
	return rows.Err()
}
