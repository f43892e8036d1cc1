package errors

import (
	"errors"
)

// asError finds the outermost *Error in err's chain
func asError(err error) (*Error, bool) {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr, true
	}
	return nil, false
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	if customErr, ok := asError(err); ok {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if customErr, ok := asError(err); ok {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	if customErr, ok := asError(err); ok {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists reports a duplicate, such as a catalog name listed twice
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsFailedPrecondition reports an operation attempted in the wrong picker state
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsOutOfRange reports a row or child index outside its collection
func IsOutOfRange(err error) bool {
	return GetCode(err) == CodeOutOfRange
}

// IsDataLoss reports a saved or bundled payload that no longer decodes
func IsDataLoss(err error) bool {
	return GetCode(err) == CodeDataLoss
}
