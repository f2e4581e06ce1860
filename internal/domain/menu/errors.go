package menu

import "errors"

var (
	ErrNotFound = errors.New("meal not found")
)
