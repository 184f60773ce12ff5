package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// AnalyzeCoordinatesInput is the input schema for the analyze_coordinates tool.
type AnalyzeCoordinatesInput struct {
	Latitude  string `json:"latitude" jsonschema:"latitude of the site, sent as text"`
	Longitude string `json:"longitude" jsonschema:"longitude of the site, sent as text"`
}

// AnalyzeFileInput is the input schema for the analyze_file tool.
type AnalyzeFileInput struct {
	Path string `json:"path" jsonschema:"local path of the spreadsheet or image to upload"`
	Kind string `json:"kind,omitempty" jsonschema:"file (spreadsheet, default) or image"`
}

// AnalyzeOutput is the output schema for the analyze tools.
type AnalyzeOutput struct {
	Mode      string   `json:"mode"`
	Result    any      `json:"result"`
	SampleIDs []string `json:"sample_ids,omitempty"`
}

// CalculateInput is the input schema for the calculate_electricity tool.
type CalculateInput struct {
	SampleID int64 `json:"sample_id" jsonschema:"sample id taken from an analysis result"`
}

// CalculateOutput is the output schema for the calculate_electricity tool.
type CalculateOutput struct {
	SampleID  int64   `json:"sample_id"`
	DailyKWh  float64 `json:"estimated_kwh_per_day"`
	YearlyKWh float64 `json:"estimated_kwh_per_year"`
	Message   string  `json:"message"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_coordinates",
		Description: "Run a solar analysis for a latitude/longitude pair",
	}, s.handleAnalyzeCoordinates)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_file",
		Description: "Run a solar analysis for a local spreadsheet or image",
	}, s.handleAnalyzeFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calculate_electricity",
		Description: "Estimate daily and yearly electricity output for a sample id",
	}, s.handleCalculate)
}

// handleAnalyzeCoordinates handles the analyze_coordinates tool invocation.
func (s *Server) handleAnalyzeCoordinates(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeCoordinatesInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	fields := domain.InputFields{Latitude: input.Latitude, Longitude: input.Longitude}
	return s.analyze(ctx, domain.InputModeCoordinates, fields)
}

// handleAnalyzeFile handles the analyze_file tool invocation.
func (s *Server) handleAnalyzeFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeFileInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	mode := domain.InputModeFile
	if input.Kind != "" {
		parsed, ok := domain.ParseInputMode(input.Kind)
		if !ok || parsed == domain.InputModeCoordinates {
			return nil, AnalyzeOutput{}, fmt.Errorf("%w: kind must be file or image, got %q", domain.ErrInvalidInput, input.Kind)
		}
		mode = parsed
	}

	blob, err := s.ports.Payload.Load(input.Path)
	if err != nil {
		return nil, AnalyzeOutput{}, fmt.Errorf("loading %s: %w", input.Path, err)
	}

	var fields domain.InputFields
	if mode == domain.InputModeImage {
		fields.Image = blob
	} else {
		fields.File = blob
	}
	return s.analyze(ctx, mode, fields)
}

func (s *Server) analyze(
	ctx context.Context,
	mode domain.InputMode,
	fields domain.InputFields,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	envelope, err := s.ports.Payload.Build(mode, fields)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	result, err := s.ports.Submission.Submit(ctx, envelope)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	var decoded any
	if err := result.Decode(&decoded); err != nil {
		return nil, AnalyzeOutput{}, fmt.Errorf("decoding result: %w", err)
	}

	return nil, AnalyzeOutput{
		Mode:      mode.String(),
		Result:    decoded,
		SampleIDs: result.SampleIDs(),
	}, nil
}

// handleCalculate handles the calculate_electricity tool invocation.
func (s *Server) handleCalculate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CalculateInput,
) (*mcp.CallToolResult, CalculateOutput, error) {
	result := s.ports.Calculation.Calculate(ctx, strconv.FormatInt(input.SampleID, 10))
	if !result.Found() {
		if result.Err != nil {
			return nil, CalculateOutput{}, fmt.Errorf("%s: %w", result.Message(), result.Err)
		}
		return nil, CalculateOutput{}, errors.New(result.Message())
	}

	return nil, CalculateOutput{
		SampleID:  result.SampleID,
		DailyKWh:  result.DailyKWh,
		YearlyKWh: result.YearlyKWh,
		Message:   result.Message(),
	}, nil
}
