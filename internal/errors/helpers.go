package errors

import (
	"context"
	"errors"
)

// As is errors.As narrowed to *Error.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of the first *Error in err's chain. A nil error is
// CodeOK and a foreign error is CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the first *Error in err's chain.
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the caller-facing message, without code or cause.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// FromContext wraps a context error so that cancellation and deadline expiry
// keep their own codes instead of surfacing as internal failures.
func FromContext(err error, message string) *Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return WrapWithCode(err, CodeDeadlineExceeded, message)
	default:
		return WrapWithCode(err, CodeCanceled, message)
	}
}

func hasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

func IsNotFound(err error) bool        { return hasCode(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return hasCode(err, CodeInvalidArgument) }
func IsAborted(err error) bool         { return hasCode(err, CodeAborted) }
func IsInternal(err error) bool        { return hasCode(err, CodeInternal) }
func IsUnavailable(err error) bool     { return hasCode(err, CodeUnavailable) }

// IsCanceled reports cancellation, including an expired deadline.
func IsCanceled(err error) bool {
	return hasCode(err, CodeCanceled) || hasCode(err, CodeDeadlineExceeded)
}
