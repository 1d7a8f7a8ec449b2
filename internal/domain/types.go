package domain

// Category distinguishes configuration commands from security hardening ones.
type Category string

const (
	CategorySetup    Category = "setup"
	CategorySecurity Category = "security"
)

// Command is one flattened entry of the vendor knowledge tree.
// The full set is built once at startup and never mutated afterwards.
type Command struct {
	Vendor          string
	Category        Category
	Level           string // security level name; empty for setup commands
	DevicePath      string // slash-joined ancestry, starts with the vendor name
	Name            string
	Description     string
	Template        string // may contain [placeholder] tokens
	Recommendations string
}

// Document is the human-readable rendering of one Command, used as the unit
// of vector indexing.
type Document struct {
	Vendor   string
	Category Category
	Text     string
}

// SearchResult is a matching document with a relevance score.
type SearchResult struct {
	Document Document
	Score    float32
}
