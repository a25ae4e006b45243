package domain

// ResponseTemplate is the static recommendation record for one category.
// Loaded once at startup, never mutated.
type ResponseTemplate struct {
	Advice       string
	Duration     string
	Features     []string
	Technologies []string
	Budget       string
	Terms        []string
	Summary      string
	Questions    []string
}
