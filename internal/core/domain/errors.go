package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrValidation   = errors.New("validation failed")
)

var (
	ErrTitleRequired       = fmt.Errorf("%w: title is required", ErrValidation)
	ErrInvalidStatus       = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidStatusFilter = fmt.Errorf("%w: invalid status filter", ErrValidation)
)
