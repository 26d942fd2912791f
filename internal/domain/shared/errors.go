package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
)

// NewInvalidFieldError reports a field value the caller can correct,
// such as a state code outside the known two-letter set.
func NewInvalidFieldError(message string) *DomainError {
	return NewDomainError("INVALID_FIELD", message)
}

// NewPersistenceError wraps a store-level failure that is not a caller
// input problem (connectivity loss, a constraint outside the fingerprint
// race, etc).
func NewPersistenceError(message string) *DomainError {
	return NewDomainError("PERSISTENCE", message)
}
