package tui

import "errors"

// ErrMissingPayloadBuilder is returned when the payload builder is not provided.
var ErrMissingPayloadBuilder = errors.New("tui: payload builder is required")

// ErrMissingSubmissionService is returned when the submission service is not provided.
var ErrMissingSubmissionService = errors.New("tui: submission service is required")

// ErrMissingPageController is returned when the page controller is not provided.
var ErrMissingPageController = errors.New("tui: page controller is required")

// ErrMissingExportService is returned when the export service is not provided.
var ErrMissingExportService = errors.New("tui: export service is required")

// ErrMissingCalculationService is returned when the calculation service is not provided.
var ErrMissingCalculationService = errors.New("tui: calculation service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
