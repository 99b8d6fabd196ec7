package services

import "fmt"

// Service errors carry enough type information for handlers to pick the
// right status code without string matching. Messages are short and safe
// to show to the client; internal detail stays in server-side logs.

// ValidationError is a user-correctable input failure (400).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError means the target or a referenced resource is absent (404).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// AuthorizationError means the caller is authenticated but lacks rights
// (403). It is raised only after the target's existence is confirmed, so
// the 404-before-403 order never leaks extra information.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func NewAuthorizationError(message string) *AuthorizationError {
	return &AuthorizationError{Message: message}
}

// AuthenticationError means no valid session accompanied the request (401).
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}

// ConflictError is a business-rule duplicate (400, "already exists").
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}
