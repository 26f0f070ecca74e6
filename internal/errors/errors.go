package errors

import (
	stderrors "errors"
	"fmt"
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

// RenderError is returned when a document could not be constructed.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

func NewRenderError(message string, cause error) *RenderError {
	return &RenderError{
		Message: message,
		Cause:   cause,
	}
}

func IsRenderError(err error) (*RenderError, bool) {
	var re *RenderError
	if stderrors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// DeliveryError wraps a mail transport failure. Error() yields the
// human-readable "failed to send email: <cause>" form.
type DeliveryError struct {
	Cause error
}

func (e *DeliveryError) Error() string {
	if e.Cause == nil {
		return "failed to send email: unknown error"
	}
	return fmt.Sprintf("failed to send email: %v", e.Cause)
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}

func NewDeliveryError(cause error) *DeliveryError {
	return &DeliveryError{Cause: cause}
}

func IsDeliveryError(err error) (*DeliveryError, bool) {
	var de *DeliveryError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}
