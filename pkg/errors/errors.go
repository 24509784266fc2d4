// Package errors provides structured error handling for Signet.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess    = 0 // Successful execution
	ExitGeneral    = 1 // General/unknown error
	ExitInput      = 2 // Invalid input
	ExitRejected   = 3 // Transaction rejected during review
	ExitNotFound   = 4 // Resource not found
	ExitPermission = 5 // Permission denied
)

// SignetError is the structured error type for Signet.
type SignetError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *SignetError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SignetError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for SignetError.
func (e *SignetError) Is(target error) bool {
	var t *SignetError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &SignetError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &SignetError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	ErrNotFound = &SignetError{
		Code:     "NOT_FOUND",
		Message:  "resource not found",
		ExitCode: ExitNotFound,
	}

	// Wallet resolution errors. These abort a send before any network
	// action is taken.
	ErrWalletNotFound = &SignetError{
		Code:     "WALLET_NOT_FOUND",
		Message:  "no wallet matches the requested address",
		ExitCode: ExitNotFound,
	}

	ErrWalletNameNotFound = &SignetError{
		Code:     "WALLET_NAME_NOT_FOUND",
		Message:  "wallet not found",
		ExitCode: ExitNotFound,
	}

	// ErrTxReviewRejected indicates the reviewer rejected the transaction
	// or the review channel closed before an accept. Not a system fault.
	ErrTxReviewRejected = &SignetError{
		Code:     "TX_REVIEW_REJECTED",
		Message:  "transaction rejected during review",
		ExitCode: ExitRejected,
	}

	// ErrCannotSimulate indicates the in-flight transaction cannot be
	// translated into a simulation request. Advisory only; never aborts
	// the review flow.
	ErrCannotSimulate = &SignetError{
		Code:     "CANNOT_SIMULATE",
		Message:  "transaction cannot be simulated",
		ExitCode: ExitGeneral,
	}

	// Chain-specific errors.
	ErrInvalidAddress = &SignetError{
		Code:     "INVALID_ADDRESS",
		Message:  "invalid address format",
		ExitCode: ExitInput,
	}

	ErrInvalidValue = &SignetError{
		Code:     "INVALID_VALUE",
		Message:  "invalid numeric value",
		ExitCode: ExitInput,
	}

	ErrInvalidData = &SignetError{
		Code:     "INVALID_DATA",
		Message:  "invalid hex data",
		ExitCode: ExitInput,
	}

	ErrNetworkError = &SignetError{
		Code:     "NETWORK_ERROR",
		Message:  "network communication failed",
		ExitCode: ExitGeneral,
	}

	ErrTxRejected = &SignetError{
		Code:     "TX_REJECTED",
		Message:  "transaction rejected by network",
		ExitCode: ExitGeneral,
	}

	ErrSignerFailed = &SignetError{
		Code:     "SIGNER_FAILED",
		Message:  "signer construction failed",
		ExitCode: ExitGeneral,
	}

	// Config-specific errors.
	ErrConfigNotFound = &SignetError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitNotFound,
	}

	ErrConfigInvalid = &SignetError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}

	ErrNetworkNotFound = &SignetError{
		Code:     "NETWORK_NOT_FOUND",
		Message:  "network not configured",
		ExitCode: ExitNotFound,
	}

	// Wallet store errors.
	ErrStoreNotFound = &SignetError{
		Code:     "STORE_NOT_FOUND",
		Message:  "wallet store file not found",
		ExitCode: ExitNotFound,
	}

	ErrDecryptionFailed = &SignetError{
		Code:     "DECRYPTION_FAILED",
		Message:  "decryption failed - wrong password or corrupted file",
		ExitCode: ExitPermission,
	}

	ErrNotSupported = &SignetError{
		Code:     "NOT_SUPPORTED",
		Message:  "operation not supported for this wallet kind",
		ExitCode: ExitInput,
	}
)

// New creates a new SignetError with the given code and message.
func New(code, message string) *SignetError {
	return &SignetError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var se *SignetError
	if errors.As(err, &se) {
		return &SignetError{
			Code:       se.Code,
			Message:    fmt.Sprintf("%s: %s", msg, se.Message),
			Details:    se.Details,
			Suggestion: se.Suggestion,
			Cause:      err,
			ExitCode:   se.ExitCode,
		}
	}

	return &SignetError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var se *SignetError
	if errors.As(err, &se) {
		return &SignetError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    details,
			Suggestion: se.Suggestion,
			Cause:      se.Cause,
			ExitCode:   se.ExitCode,
		}
	}

	return &SignetError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var se *SignetError
	if errors.As(err, &se) {
		return &SignetError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    se.Details,
			Suggestion: suggestion,
			Cause:      se.Cause,
			ExitCode:   se.ExitCode,
		}
	}

	return &SignetError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var se *SignetError
	if errors.As(err, &se) {
		return se.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var se *SignetError
	if errors.As(err, &se) {
		return se.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
