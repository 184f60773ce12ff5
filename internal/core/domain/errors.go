package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrValidation indicates a required field is missing for the active input mode.
	// It never reaches the network layer.
	ErrValidation = errors.New("validation failed")

	// ErrNotReady indicates an envelope was requested for a mode whose fields are incomplete.
	ErrNotReady = errors.New("input mode is not ready")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransport indicates a boundary was unreachable, timed out or returned
	// an unusable response.
	ErrTransport = errors.New("backend unavailable")

	// ErrNotFound indicates the calculation boundary has no such sample.
	ErrNotFound = errors.New("not found")

	// ErrSubmissionInProgress indicates a submission is already in flight.
	ErrSubmissionInProgress = errors.New("submission in progress")

	// ErrInvalidTransition indicates a page transition that is not allowed from the current view.
	ErrInvalidTransition = errors.New("invalid page transition")

	// ErrNoActiveResult indicates an action needs a result but none is shown.
	ErrNoActiveResult = errors.New("no active result")

	// Export Errors.

	// ErrSaveUnavailable indicates the artifact could not be handed to the save mechanism.
	ErrSaveUnavailable = errors.New("save mechanism unavailable")

	// ErrCancelled indicates the user dismissed a native dialog.
	ErrCancelled = errors.New("cancelled by user")

	// ErrPickerUnavailable indicates the native open-file dialog could not be shown.
	ErrPickerUnavailable = errors.New("file picker unavailable")

	// ErrPreviewUnavailable indicates an image preview could not be generated.
	// Preview failures are cosmetic and never block submission.
	ErrPreviewUnavailable = errors.New("preview unavailable")
)
