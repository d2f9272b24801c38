package slides

import "errors"

// Deck validation errors.
var (
	ErrEmptyDeck          = errors.New("deck contains no slides")
	ErrMissingID          = errors.New("slide is missing an id")
	ErrDuplicateID        = errors.New("duplicate slide id")
	ErrMissingTitle       = errors.New("slide is missing a title")
	ErrMissingDescription = errors.New("slide is missing a description")
)
