// FILE: internal/pkg/serverutils/response.go
package serverutils

import "ai-character-admin-be/internal/pkg/apperrors"

// BaseResponse is the envelope for every JSON response.
type BaseResponse[T any] struct {
	Success bool                  `json:"success"`
	Code    int                   `json:"code,omitempty"`
	Message string                `json:"message"`
	Data    T                     `json:"data,omitempty"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// SuccessResponse wraps data in a success envelope.
func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorResponse builds a failure envelope.
func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ValidationErrorResponse builds a failure envelope carrying every
// field problem so the console can render them inline.
func ValidationErrorResponse(message string, fields []apperrors.FieldError) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    400,
		Message: message,
		Errors:  fields,
	}
}
