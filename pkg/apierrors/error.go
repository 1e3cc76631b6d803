package apierrors

import (
	"fmt"

	"tasktracker/pkg/translator"
)

// JsonErr is the body of every error response: {"detail": "..."}.
type JsonErr struct {
	Code   int    `json:"-"`
	Detail string `json:"detail"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Detail: %s", e.Code, e.Detail)
}

// CreateError generates a JsonErr with a translated detail message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{Code: code, Detail: GetTransErrorMsg(msgKey, lang)}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(msgKey, lang)
}
