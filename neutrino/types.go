package neutrino

import "fmt"

// Hierarchy selects how the total neutrino mass is distributed over the
// three states.
//
//   - Degenerate — three equal masses, ignoring the splittings.
//   - Normal     — normal ordering: two light states close in mass, one
//     heavier state.
//   - Inverted   — inverted ordering: two heavy states close in mass, one
//     lighter state.
type Hierarchy int

const (
	// Degenerate splits the total mass into three equal parts.
	Degenerate Hierarchy = iota
	// Normal is the normal mass ordering.
	Normal
	// Inverted is the inverted mass ordering.
	Inverted
)

// ParseHierarchy maps the configuration names "degenerate", "normal" and
// "inverted" to their Hierarchy values. Unknown names return ErrHierarchy.
func ParseHierarchy(name string) (Hierarchy, error) {
	switch name {
	case "degenerate":
		return Degenerate, nil
	case "normal":
		return Normal, nil
	case "inverted":
		return Inverted, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrHierarchy, name)
}

// String returns the configuration name of the hierarchy.
func (h Hierarchy) String() string {
	switch h {
	case Degenerate:
		return "degenerate"
	case Normal:
		return "normal"
	case Inverted:
		return "inverted"
	}
	return fmt.Sprintf("Hierarchy(%d)", int(h))
}
