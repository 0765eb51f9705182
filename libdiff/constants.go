package libdiff

// Op is the kind of a Change.
type Op int

const (
	Insert Op = iota + 1
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return "?"
	}
}
