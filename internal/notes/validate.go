package notes

import "fmt"

// validate applies the same rule to create and update payloads:
// a non-empty title and at least one list item.
func validate(in NoteInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is empty", ErrInvalidInput)
	}
	if len(in.ListItems) == 0 {
		return fmt.Errorf("%w: no list items", ErrInvalidInput)
	}
	return nil
}
