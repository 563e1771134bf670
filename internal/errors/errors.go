package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field" xml:"field,attr"`
	Message string `json:"message" xml:",chardata"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors collects field errors reported together
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

// Add appends a field error
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, &ValidationError{Field: field, Message: message})
}

// OrNil returns nil when no errors were collected
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// OperationFailedError wraps a storage or persistence failure that is reported
// to the user as a generic status. The cause is kept for logging.
type OperationFailedError struct {
	Operation string
	Err       error
}

func (e *OperationFailedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failed", e.Operation)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *OperationFailedError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound      = &NotFoundError{Entity: "company"}
	ErrOwnerCompanyNotFound = &NotFoundError{Entity: "owner company"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrLogoNotFound         = &NotFoundError{Entity: "logo"}
)

// Already Exists Errors
var (
	ErrCompanyExists = &AlreadyExistsError{Entity: "company", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrInvalidCompany = errors.New("company is not valid for this operation")
	ErrNoProjects     = errors.New("no projects available")
	ErrReferenced     = errors.New("company is still referenced by other records")
	ErrMissingLogo    = &ValidationError{Field: "logo", Message: "can't be blank"}
)

// Authentication / Authorization Errors
var (
	ErrMissingUser             = &AuthenticationError{Message: "user not found in context"}
	ErrInsufficientPermissions = &AuthorizationError{Message: "insufficient permissions"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsOperationFailed checks if an error is an OperationFailedError
func IsOperationFailed(err error) bool {
	var opErr *OperationFailedError
	return errors.As(err, &opErr)
}

// FieldErrors flattens a validation error into its field errors. Other errors yield nil.
func FieldErrors(err error) ValidationErrors {
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ValidationErrors{validationErr}
	}
	return nil
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewOperationFailedError wraps err as a failed operation
func NewOperationFailedError(operation string, err error) error {
	return &OperationFailedError{Operation: operation, Err: err}
}
