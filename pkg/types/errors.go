// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the reference movie is not in the dataset.
var ErrNotFound = errors.New("movie not found")

// NotFoundError names the title (or index) that could not be resolved.
// It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Title string
	Index int
}

func (e *NotFoundError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("movie %q not found in dataset", e.Title)
	}
	return fmt.Sprintf("movie index %d not found in dataset", e.Index)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
