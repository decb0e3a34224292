package wcagref

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinates address a success criterion as chapter.section.subsection.
type Coordinates struct {
	Chapter    int `json:"chapter"`
	Section    int `json:"section"`
	Subsection int `json:"subsection"`
}

// String returns the dotted form, e.g. "2.1.1".
func (c Coordinates) String() string {
	return fmt.Sprintf("%d.%d.%d", c.Chapter, c.Section, c.Subsection)
}

// ParseCoordinates parses a dotted criterion number such as "1.4.11".
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Coordinates{}, Errorf(EINVALID, "criterion number %q must have the form chapter.section.subsection", s)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return Coordinates{}, Errorf(EINVALID, "criterion number %q contains invalid component %q", s, part)
		}
		nums[i] = n
	}

	return Coordinates{Chapter: nums[0], Section: nums[1], Subsection: nums[2]}, nil
}
