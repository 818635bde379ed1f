package models

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrCategoryNotFound is returned when a category is not found, either by id
// or when a product references a category name that does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCategoryExists is returned when creating or renaming a category to a
// name that is already taken.
var ErrCategoryExists = errors.New("category already exists")

// CategoryInUseError blocks deletion of a category that still has products.
type CategoryInUseError struct {
	Name  string
	Count int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("cannot delete category %q: %d product(s) still reference it", e.Name, e.Count)
}
