package ports

// TextComposer lets the user write free-form text in an external program
type TextComposer interface {
	// Compose opens the composer seeded with initial and returns what the
	// user saved. Leading and trailing whitespace is preserved.
	Compose(initial string) (string, error)
}
