package validation

import (
	"bytes"
	"encoding/json"
	"errors"

	"tasktracker/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// DecodeObject parses a request body into its top-level fields. An empty
// body counts as an empty object.
func DecodeObject(body []byte) (map[string]json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, ErrInvalidTaskPayload
	}
	return raw, nil
}

func BuildCreateTaskInput(raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	title, ok := stringField(raw, "title")
	if !ok {
		return domain.CreateTaskInput{}, domain.ErrTitleRequired
	}

	description, err := optionalStringField(raw, "description")
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: description,
	}, nil
}

func BuildReplaceTaskInput(raw map[string]json.RawMessage) (domain.ReplaceTaskInput, error) {
	title, ok := stringField(raw, "title")
	if !ok {
		return domain.ReplaceTaskInput{}, domain.ErrTitleRequired
	}

	description, err := optionalStringField(raw, "description")
	if err != nil {
		return domain.ReplaceTaskInput{}, err
	}

	status, err := BuildTaskStatus(raw)
	if err != nil {
		return domain.ReplaceTaskInput{}, err
	}

	return domain.ReplaceTaskInput{
		Title:       title,
		Description: description,
		Status:      status,
	}, nil
}

// BuildTaskStatus reads the "status" field. Anything other than a string
// naming a known status is rejected.
func BuildTaskStatus(raw map[string]json.RawMessage) (domain.TaskStatus, error) {
	value, ok := stringField(raw, "status")
	if !ok {
		return "", domain.ErrInvalidStatus
	}
	status := domain.TaskStatus(value)
	if !status.IsValid() {
		return "", domain.ErrInvalidStatus
	}
	return status, nil
}

// ParseStatusFilter turns the ?status= query value into a filter. An empty
// value means no filter.
func ParseStatusFilter(value string) (*domain.TaskStatus, error) {
	if value == "" {
		return nil, nil
	}
	status := domain.TaskStatus(value)
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatusFilter
	}
	return &status, nil
}

func stringField(raw map[string]json.RawMessage, field string) (string, bool) {
	value, exists := raw[field]
	if !exists || isJSONNull(value) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	return s, true
}

func optionalStringField(raw map[string]json.RawMessage, field string) (string, error) {
	value, exists := raw[field]
	if !exists || isJSONNull(value) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", ErrInvalidTaskPayload
	}
	return s, nil
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
