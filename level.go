package wcagref

import "strings"

// Level is a WCAG conformance level. Stored data always uses the numeric
// form: 1 = A, 2 = AA, 3 = AAA.
type Level int

// Conformance levels.
const (
	LevelA   Level = 1
	LevelAA  Level = 2
	LevelAAA Level = 3
)

// Valid reports whether l is one of the three conformance levels.
func (l Level) Valid() bool {
	return l >= LevelA && l <= LevelAAA
}

// String returns the letter form of the level ("A", "AA", "AAA").
func (l Level) String() string {
	if !l.Valid() {
		return ""
	}
	return strings.Repeat("A", int(l))
}

// ParseLevel accepts either the letter form ("AA") or the digit form ("2").
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "A", "1":
		return LevelA, nil
	case "AA", "2":
		return LevelAA, nil
	case "AAA", "3":
		return LevelAAA, nil
	}
	return 0, Errorf(EINVALID, "invalid conformance level %q", s)
}
