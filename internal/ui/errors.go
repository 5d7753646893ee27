package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrCanceled is returned when the user leaves a cancelable widget with Esc.
	ErrCanceled = errors.New("ui: canceled")
	// ErrNoItems is returned when a widget without items is executed.
	ErrNoItems = errors.New("ui: no items")
	// ErrEmptyFile is returned by TextFileBox for a file without content.
	ErrEmptyFile = errors.New("ui: empty file")
	// ErrClosed is returned by operations on a closed console.
	ErrClosed = errors.New("ui: console closed")
)

// FunctionKeyError reports that a function key ended a menu that accepts them.
type FunctionKeyError struct {
	// N is the function key number, 1 for F1 through 12 for F12.
	N int
}

func (e *FunctionKeyError) Error() string {
	return fmt.Sprintf("ui: function key F%d pressed", e.N)
}

// FunctionKey returns the function key number carried by err, or 0.
func FunctionKey(err error) int {
	var fk *FunctionKeyError
	if errors.As(err, &fk) {
		return fk.N
	}
	return 0
}
