package utils

import (
	"errors"
	"fmt"
)

var (
	ErrPOINotFound   = errors.New("poi not found")
	ErrFloraNotFound = errors.New("flora not found")
	ErrFaunaNotFound = errors.New("fauna not found")

	ErrInvalidID         = errors.New("invalid id parameter")
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	ErrInvalidImageType = errors.New("file must be an image")
	ErrImageUpload      = errors.New("upload failed")

	ErrDatabaseConnection = errors.New("database connection error")
	ErrDatabaseError      = errors.New("database error")
)

// ReferenceNotFoundError is returned when a record points at a parent that
// does not exist, e.g. Flora created with an unknown poi_id.
type ReferenceNotFoundError struct {
	Entity string
	ID     int64
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}
