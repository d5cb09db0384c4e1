package db

import "fmt"

// NotFoundError reports that a row does not exist or is not visible to
// the requesting user.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}
