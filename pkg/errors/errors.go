package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// InvalidSide is reported when the side token is neither of the two accepted markers.
	InvalidSide ErrorCode = "invalid_side"
	// InvalidQuantity is reported when the quantity token is not a positive integer in canonical form.
	InvalidQuantity ErrorCode = "invalid_quantity"
	// InvalidPrice is reported when the price token is malformed or below one tick.
	InvalidPrice ErrorCode = "invalid_price"

	// GeneralInternalError represents a defect rather than a user-facing rejection.
	GeneralInternalError ErrorCode = "general_internal_error"
)

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the user-facing error message.
	// E.g. "Order quantity should be a positive integer".
	Message string

	// Code (required) is the machine-readable error code.
	Code ErrorCode

	// Field (optional) is the related submission field the error occurred on, if any.
	Field string
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message string, code ErrorCode, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// Error is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	return e.Message
}

// ErrorCodeEquals checks whether a given `error` has a specific code.
func ErrorCodeEquals(err error, code ErrorCode) bool {
	errDetails, ok := err.(*ErrorDetails)
	if !ok {
		return false
	}

	return errDetails.Code == code
}
