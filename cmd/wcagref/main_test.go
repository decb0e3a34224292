package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/wcagref"
	main "github.com/fwojciec/wcagref/cmd/wcagref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against the bundled dataset.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	err = main.NewMain().Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestMain_Run_Criterion(t *testing.T) {
	t.Parallel()

	t.Run("looks up criterion in bundled dataset", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "criterion", "2.2", "3.3.4")

		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"3.3.4 Error Prevention (Legal, Financial, Data) (Level AA)",
			"  link:       https://www.w3.org/TR/WCAG22/#error-prevention-legal-financial-data",
			"  quickref:   https://www.w3.org/WAI/WCAG22/quickref/#error-prevention-legal-financial-data",
			"  understand: https://www.w3.org/WAI/WCAG22/Understanding/error-prevention-legal-financial-data",
		}, "\n")+"\n", stdout)
	})

	t.Run("honors global format flag", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "--format", "json", "criterion", "2.1", "2.1.3")

		require.NoError(t, err)
		var rec wcagref.CriterionRecord
		require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
		assert.Equal(t, "keyboard-no-exception", rec.ID)
		assert.Equal(t, wcagref.LevelAAA, rec.Level)
	})

	t.Run("reports missing chapter", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "criterion", "2.1", "99.1.1")

		require.ErrorIs(t, err, wcagref.ErrChapterNotFound)
		assert.Contains(t, stderr, "error: requested chapter doesn't exist")
	})

	t.Run("reports invalid version", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "criterion", "2", "1.1.1")

		assert.ErrorIs(t, err, wcagref.ErrInvalidVersion)
	})
}

func TestMain_Run_Link(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"flat 2.0 technique", []string{"link", "technique", "2.0", "SCR27"}, "https://www.w3.org/TR/WCAG20-TECHS/SCR27.html"},
		{"grouped 2.1 technique", []string{"link", "technique", "2.1", "G57"}, "https://www.w3.org/WAI/WCAG21/Techniques/general/G57.html"},
		{"grouped 2.2 technique", []string{"link", "technique", "2.2", "SCR27"}, "https://www.w3.org/WAI/WCAG22/Techniques/client-side-script/SCR27.html"},
		{"criterion", []string{"link", "criterion", "2.2", "3.3.4"}, "https://www.w3.org/TR/WCAG22/#error-prevention-legal-financial-data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := run(t, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestMain_Run_List(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "list", "2.1", "--chapter", "2", "--section", "1")

	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"A    2.1.1 Keyboard",
		"A    2.1.2 No Keyboard Trap",
		"AAA  2.1.3 Keyboard (No Exception)",
		"A    2.1.4 Character Key Shortcuts",
	}, "\n")+"\n", stdout)
}

func TestMain_Run_Techniques(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "-o", "json", "techniques", "2.1", "--group", "ARIA")

	require.NoError(t, err)
	var entries []wcagref.TechniqueEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, "ARIA1", entries[0].Code)
	assert.Equal(t, "aria", entries[0].Record.GroupID)
}

func TestMain_Run_Export(t *testing.T) {
	t.Parallel()

	t.Run("exports JSON partitions that load back with --data", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "dataset")
		stdout, _, err := run(t, "export", "json", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Exported 3 partitions")
		assert.FileExists(t, filepath.Join(dir, "wcag21.json"))

		stdout, _, err = run(t, "--data", dir, "link", "technique", "2.0", "SCR27")
		require.NoError(t, err)
		assert.Equal(t, "https://www.w3.org/TR/WCAG20-TECHS/SCR27.html\n", stdout)
	})

	t.Run("exports SQLite database that loads back with --db", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "wcag.db")
		_, _, err := run(t, "export", "sqlite", dbPath)
		require.NoError(t, err)

		stdout, _, err := run(t, "--db", dbPath, "link", "criterion", "2.2", "3.3.4")
		require.NoError(t, err)
		assert.Equal(t, "https://www.w3.org/TR/WCAG22/#error-prevention-legal-financial-data\n", stdout)

		stdout, _, err = run(t, "--db", dbPath, "info")
		require.NoError(t, err)
		assert.Contains(t, stdout, "saved:       ")
	})

	t.Run("fingerprint survives both round trips", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "dataset")
		dbPath := filepath.Join(t.TempDir(), "wcag.db")
		_, _, err := run(t, "export", "json", dir)
		require.NoError(t, err)
		_, _, err = run(t, "export", "sqlite", dbPath)
		require.NoError(t, err)

		fingerprint := func(args ...string) string {
			stdout, _, err := run(t, append(args, "-o", "json", "info")...)
			require.NoError(t, err)
			var info struct {
				Fingerprint string `json:"fingerprint"`
			}
			require.NoError(t, json.Unmarshal([]byte(stdout), &info))
			return info.Fingerprint
		}

		want := fingerprint()
		assert.Len(t, want, 16)
		assert.Equal(t, want, fingerprint("--data", dir))
		assert.Equal(t, want, fingerprint("--db", dbPath))
	})
}

func TestMain_Run_DataErrors(t *testing.T) {
	t.Parallel()

	t.Run("fails on empty data directory", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "--data", t.TempDir(), "info")

		require.Error(t, err)
		assert.Equal(t, wcagref.ENOTFOUND, wcagref.ErrorCode(err))
		assert.Contains(t, stderr, "WCAGREF_DATA")
	})

	t.Run("fails on empty database", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "--db", filepath.Join(t.TempDir(), "empty.db"), "info")

		require.Error(t, err)
		assert.Equal(t, wcagref.ENOTFOUND, wcagref.ErrorCode(err))
		assert.Contains(t, stderr, "WCAGREF_DB")
	})
}

func TestMain_Run_Info(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "info")

	require.NoError(t, err)
	assert.Contains(t, stdout, "source:      bundled")
	assert.NotContains(t, stdout, "saved:")
	assert.Contains(t, stdout, "WCAG 2.0   61 criteria")
	assert.Contains(t, stdout, "WCAG 2.1   78 criteria")
	assert.Contains(t, stdout, "WCAG 2.2   87 criteria")
}

func TestMain_Run_VerboseLogsLookups(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "--verbose", "link", "technique", "2.1", "G57")

	require.NoError(t, err)
	assert.Contains(t, stderr, `msg="technique link"`)
	assert.Contains(t, stderr, "technique=G57")
}

func TestMain_Run_UsesInjectedDataset(t *testing.T) {
	t.Parallel()

	ds := wcagref.NewDataset(&wcagref.Partition{
		Version: wcagref.Version21,
		URL:     "https://example.test/WCAG21/",
		Principles: map[int]*wcagref.Principle{
			1: {ID: "p", Text: "P", Guidelines: map[int]*wcagref.Guideline{
				1: {ID: "g", Text: "G", SuccessCriteria: map[int]*wcagref.SuccessCriterion{
					1: {ID: "sc", Handle: "1.1.1 Sc", Level: wcagref.LevelA},
				}},
			}},
		},
		Techniques: wcagref.TechniqueIndex{URL: "https://example.test/techniques/"},
	})

	var stdout, stderr bytes.Buffer
	m := main.NewMain()
	m.Dataset = ds
	err := m.Run(context.Background(), []string{"link", "criterion", "2.1", "1.1.1"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "https://example.test/WCAG21/#sc\n", stdout.String())
}
