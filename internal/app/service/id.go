package service

import (
	"fmt"

	nanoid "github.com/jaevor/go-nanoid"
)

// TaskIDLength matches the default nanoid size.
const TaskIDLength = 21

// NewNanoIDGenerator returns a URL-safe random id generator.
func NewNanoIDGenerator() (func() string, error) {
	generator, err := nanoid.Standard(TaskIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator: %w", err)
	}
	return generator, nil
}
