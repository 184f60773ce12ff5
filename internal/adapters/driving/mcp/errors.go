// Package mcp provides an MCP (Model Context Protocol) server adapter for SunEye.
// It lets AI assistants submit analyses and run electricity calculations.
package mcp

import "errors"

var (
	// ErrMissingPayloadBuilder is returned when the payload builder is not provided.
	ErrMissingPayloadBuilder = errors.New("mcp: payload builder is required")

	// ErrMissingSubmissionService is returned when the submission service is not provided.
	ErrMissingSubmissionService = errors.New("mcp: submission service is required")

	// ErrMissingCalculationService is returned when the calculation service is not provided.
	ErrMissingCalculationService = errors.New("mcp: calculation service is required")
)
