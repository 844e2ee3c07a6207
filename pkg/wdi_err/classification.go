// pkg/wdi_err/classification.go
//
// Error classification with the exit codes wazuh-analysisd expects from
// custom integrations.

package wdi_err

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies errors for exit-code translation at the CLI
// boundary.
type ErrorCategory int

const (
	// CategoryGeneral - anything not otherwise classified (exit 1)
	CategoryGeneral ErrorCategory = iota
	// CategoryDependency - missing runtime dependency at startup (exit 1)
	CategoryDependency
	// CategoryBadArguments - fewer than the required invocation arguments (exit 2)
	CategoryBadArguments
	// CategoryFileNotFound - alert file absent (exit 6)
	CategoryFileNotFound
	// CategoryInvalidJSON - alert or options file is not valid JSON (exit 7)
	CategoryInvalidJSON
	// CategoryEmptyMessage - builder produced nothing deliverable (exit 1)
	CategoryEmptyMessage
	// CategoryDelivery - transport-level failure during the webhook POST (exit 1)
	CategoryDelivery
)

// ClassifiedError wraps an error with a category and optional remediation.
type ClassifiedError struct {
	Category    ErrorCategory
	Message     string
	Cause       error
	Remediation []string
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Remediation) > 0 {
		sb.WriteString("\n\nHow to fix:")
		for i, step := range e.Remediation {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	return sb.String()
}

// Unwrap returns the underlying error.
func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this category.
func (e *ClassifiedError) ExitCode() int {
	switch e.Category {
	case CategoryBadArguments:
		return 2
	case CategoryFileNotFound:
		return 6
	case CategoryInvalidJSON:
		return 7
	default:
		return 1
	}
}

// GetExitCode extracts the exit code from any error.
// Returns 0 for nil, the category code for classified errors, 1 for others.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.ExitCode()
	}

	return 1
}

// NewBadArgumentsError reports a malformed invocation.
func NewBadArgumentsError(message string, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryBadArguments,
		Message:     message,
		Remediation: remediation,
	}
}

// NewFileNotFoundError reports a missing alert file.
func NewFileNotFoundError(path string, cause error) error {
	return &ClassifiedError{
		Category: CategoryFileNotFound,
		Message:  fmt.Sprintf("alert file %s does not exist", path),
		Cause:    cause,
	}
}

// NewInvalidJSONError reports an unparseable alert or options document.
func NewInvalidJSONError(path string, cause error) error {
	return &ClassifiedError{
		Category: CategoryInvalidJSON,
		Message:  fmt.Sprintf("file %s is not valid JSON", path),
		Cause:    cause,
	}
}

// NewEmptyMessageError reports a vacuous builder result.
func NewEmptyMessageError() error {
	return &ClassifiedError{
		Category: CategoryEmptyMessage,
		Message:  "generated message is empty",
	}
}

// NewDeliveryError reports a transport-level webhook failure.
func NewDeliveryError(cause error) error {
	return &ClassifiedError{
		Category: CategoryDelivery,
		Message:  "webhook delivery failed",
		Cause:    cause,
	}
}
