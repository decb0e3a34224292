package wcagref

// Version identifies a published WCAG recommendation.
type Version string

// Supported WCAG versions.
const (
	Version20 Version = "2.0"
	Version21 Version = "2.1"
	Version22 Version = "2.2"
)

// partitions maps each version to its dataset partition key.
var partitions = map[Version]string{
	Version20: "wcag20",
	Version21: "wcag21",
	Version22: "wcag22",
}

// Versions returns all supported versions in ascending order.
func Versions() []Version {
	return []Version{Version20, Version21, Version22}
}

// ParseVersion resolves a public version string.
// The string must match exactly; "2" or " 2.1" are rejected with
// ErrInvalidVersion rather than coerced.
func ParseVersion(s string) (Version, error) {
	v := Version(s)
	if _, ok := partitions[v]; !ok {
		return "", ErrInvalidVersion
	}
	return v, nil
}

// Valid reports whether v is a supported version.
func (v Version) Valid() bool {
	_, ok := partitions[v]
	return ok
}

// Partition returns the dataset partition key for the version
// (e.g. "wcag21"). Returns an empty string for unsupported versions.
func (v Version) Partition() string {
	return partitions[v]
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return string(v)
}

// GroupedTechniques reports whether technique pages for this version are
// namespaced under a group path segment. WCAG 2.0 uses a flat namespace.
func (v Version) GroupedTechniques() bool {
	return v != Version20
}
