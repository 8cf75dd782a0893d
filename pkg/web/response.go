// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into the common response type.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg translates a validation error into a user facing message.
// The field name is prepended by the caller.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "min":
		return " must have at least " + fe.Param() + " items"
	case "max":
		return " must have at most " + fe.Param() + " items"
	case "gt":
		return " must be greater than " + fe.Param()
	case "side":
		return " must be DEBIT or CREDIT"
	case "decimal":
		return " must be a decimal number"
	default:
		return " is invalid"
	}
}
