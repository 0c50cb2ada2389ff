package hoppy

// Contact is the outcome of classifying a contact between two entities.
type Contact uint8

const (
	ContactIgnore Contact = iota
	ContactScore
	ContactTerminal
)

// String returns the contact name.
func (c Contact) String() string {
	switch c {
	case ContactIgnore:
		return "ignore"
	case ContactScore:
		return "score"
	case ContactTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Resolve classifies a contact between entities tagged a and b.
// A goal on either side scores; anything else ends the run.
func Resolve(a, b Tag) Contact {
	if a == TagGoal || b == TagGoal {
		return ContactScore
	}
	return ContactTerminal
}
