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
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists      = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrEmptyOrder         = NewDomainError("EMPTY_ORDER", "Bill must contain at least one item")
	ErrValidation         = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrPersistenceFailure = NewDomainError("PERSISTENCE_FAILURE", "Transaction aborted by storage layer")
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
)
