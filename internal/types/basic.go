package types

// Kind describes the inferred kind of a variable.
type Kind int

const (
	Unknown Kind = iota // not inferable from the assignment
	Int                 // assigned a number literal
	String              // assigned a string or char literal
)

var kindNames = [...]string{
	Unknown: "unknown",
	Int:     "int",
	String:  "string",
}

// String returns the kind's display name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}
