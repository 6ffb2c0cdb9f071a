package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agbru/mulcheck/internal/limb"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates at least one vector disagreed with the oracle.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrUnsupportedWidth is wrapped by ContractViolation when a strategy is asked
// to multiply operands of a width it does not implement.
var ErrUnsupportedWidth = errors.New("unsupported operand width")

// ErrAliasedOutput is wrapped by ContractViolation when the output buffer
// shares memory with an operand.
var ErrAliasedOutput = errors.New("output overlaps an operand")

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ContractViolation reports a contract breach at the engine boundary: a
// buffer of the wrong length, an output that overlaps an operand, or a width
// the selected strategy cannot handle. The output buffer is left untouched
// when it is returned.
type ContractViolation struct {
	// Operand names the offending buffer ("a", "b", "out" or "width").
	Operand string
	// Want is the required length in limbs.
	Want int
	// Got is the length actually supplied.
	Got int
	// Cause optionally carries a sentinel such as ErrUnsupportedWidth.
	Cause error
}

// Error returns a formatted message describing the violation.
func (e *ContractViolation) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("contract violation: %s: %v (got %d limbs)", e.Operand, e.Cause, e.Got)
	}
	return fmt.Sprintf("contract violation: %s has %d limbs, want %d", e.Operand, e.Got, e.Want)
}

// Unwrap returns the optional cause.
func (e *ContractViolation) Unwrap() error { return e.Cause }

// VerificationMismatch records a vector whose product disagreed with the
// reference oracle. It is never fatal: the harness keeps it in the suite
// result and carries on with the remaining vectors.
type VerificationMismatch struct {
	Suite  string
	Vector string
	A, B   []limb.Word
	// Want is the oracle product, Got the engine product, both 2N limbs.
	Want []limb.Word
	Got  []limb.Word
}

// Error returns a one-line summary; use Detail for the full operand dump.
func (e *VerificationMismatch) Error() string {
	return fmt.Sprintf("verification mismatch in %s/%s: want %s, got %s",
		e.Suite, e.Vector, FormatLimbs(e.Want), FormatLimbs(e.Got))
}

// Detail writes the operands and both products, one per line.
func (e *VerificationMismatch) Detail(w io.Writer) {
	fmt.Fprintf(w, "  A        = %s\n", FormatLimbs(e.A))
	fmt.Fprintf(w, "  B        = %s\n", FormatLimbs(e.B))
	fmt.Fprintf(w, "  Expected = %s\n", FormatLimbs(e.Want))
	fmt.Fprintf(w, "  Actual   = %s\n", FormatLimbs(e.Got))
}

// FormatLimbs renders a little-endian limb vector as a single big-endian hex
// number with every limb zero-padded, e.g. 0x0000000000000001_0000000000000000.
func FormatLimbs(v []limb.Word) string {
	if len(v) == 0 {
		return "0x"
	}
	var sb strings.Builder
	sb.Grow(2 + len(v)*17)
	sb.WriteString("0x")
	for i := len(v) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", v[i])
		if i > 0 {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit status.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	var mismatch *VerificationMismatch
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case errors.As(err, &mismatch):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}

// HandleRunError prints err to out, if any, and returns the matching exit code.
func HandleRunError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	code := ExitCodeFor(err)
	switch code {
	case ExitErrorCanceled:
		fmt.Fprintf(out, "Run canceled: %v\n", err)
	case ExitErrorConfig:
		fmt.Fprintf(out, "Configuration error: %v\n", err)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return code
}
