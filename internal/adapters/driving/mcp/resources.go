package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for SunEye resources.
	uriScheme = "suneye://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current analysis service and export settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "modes/{mode}",
		Name:        "input-mode",
		Description: "Fields required by an input mode (coordinates, file or image)",
		MIMEType:    "application/json",
	}, s.handleModeResource)
}

// handleSettingsResource returns the effective settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultAppSettings()
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		settings = *current
	}

	type settingsInfo struct {
		BaseURL           string  `json:"base_url"`
		TimeoutSeconds    int     `json:"timeout_seconds"`
		RequestsPerSecond float64 `json:"requests_per_second"`
		ExportDir         string  `json:"export_dir"`
		ExportUseDialog   bool    `json:"export_use_dialog"`
	}

	return jsonResource(req.Params.URI, settingsInfo{
		BaseURL:           settings.API.BaseURL,
		TimeoutSeconds:    settings.API.TimeoutSeconds,
		RequestsPerSecond: settings.API.RequestsPerSecond,
		ExportDir:         settings.Export.Dir,
		ExportUseDialog:   settings.Export.UseDialog,
	})
}

// handleModeResource describes one input mode.
func (s *Server) handleModeResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	mode, ok := domain.ParseInputMode(extractMode(req.Params.URI))
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type modeInfo struct {
		Mode        string   `json:"mode"`
		Description string   `json:"description"`
		InputType   string   `json:"input_type"`
		Fields      []string `json:"fields"`
		Tool        string   `json:"tool"`
	}

	info := modeInfo{
		Mode:        mode.String(),
		Description: mode.Description(),
		InputType:   mode.WireName(),
	}
	switch mode {
	case domain.InputModeCoordinates:
		info.Fields = []string{"latitude", "longitude"}
		info.Tool = "analyze_coordinates"
	case domain.InputModeFile:
		info.Fields = []string{"file"}
		info.Tool = "analyze_file"
	case domain.InputModeImage:
		info.Fields = []string{"image"}
		info.Tool = "analyze_file"
	}

	return jsonResource(req.Params.URI, info)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractMode extracts the mode from suneye://modes/{mode}.
func extractMode(uri string) string {
	const prefix = uriScheme + "modes/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(uri, prefix), "/")
}
