package modeler

// Mode is the interaction mode of the controller
type Mode int

const (
	Selector   Mode = iota // pick the solid or start a new sketch
	Draw                   // click points on the ground plane
	Edit                   // solid selected, whole-solid drag enabled
	VertexEdit             // drag individual base/cap vertices
)

func (m Mode) String() string {
	switch m {
	case Selector:
		return "Selector"
	case Draw:
		return "Draw"
	case Edit:
		return "Edit"
	case VertexEdit:
		return "VertexEdit"
	default:
		return "Unknown"
	}
}

// ParseMode maps a case-sensitive mode name back to a Mode
func ParseMode(name string) (Mode, bool) {
	for _, m := range []Mode{Selector, Draw, Edit, VertexEdit} {
		if m.String() == name {
			return m, true
		}
	}
	return Selector, false
}
