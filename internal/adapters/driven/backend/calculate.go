package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/metrics"
)

// calculateRequest is the /api/calculate-electricity request format.
type calculateRequest struct {
	SampleID int64 `json:"sample_id"`
}

// calculateResponse is the /api/calculate-electricity response format.
type calculateResponse struct {
	Error     json.RawMessage `json:"error"`
	DailyKWh  *float64        `json:"estimated_kwh_per_day"`
	YearlyKWh *float64        `json:"estimated_kwh_per_year"`
}

// hasError reports whether the error field is present and non-empty.
func (r calculateResponse) hasError() bool {
	e := bytes.TrimSpace(r.Error)
	switch string(e) {
	case "", "null", `""`, "false":
		return false
	default:
		return true
	}
}

// Calculate requests energy estimates for a sample.
//
// A 404 status, or any JSON body carrying a non-empty "error" field,
// yields domain.ErrNotFound. Everything else that is not a 200 with both
// estimates yields domain.ErrTransport.
func (c *Client) Calculate(ctx context.Context, query domain.CalculationQuery) (*domain.EnergyEstimate, error) {
	start := time.Now()
	estimate, err := c.calculate(ctx, query)

	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case isNotFound(err):
		outcome = metrics.OutcomeNotFound
	default:
		outcome = metrics.OutcomeError
	}
	metrics.ObserveBackend("calculate-electricity", outcome, time.Since(start))
	return estimate, err
}

func (c *Client) calculate(ctx context.Context, query domain.CalculationQuery) (*domain.EnergyEstimate, error) {
	jsonBody, err := json.Marshal(calculateRequest{SampleID: query.SampleID})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+CalculatePath, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusNotFound {
		return nil, fmt.Errorf("sample %d: %w", query.SampleID, domain.ErrNotFound)
	}

	var calc calculateResponse
	if err := json.Unmarshal(resp.body, &calc); err != nil {
		return nil, fmt.Errorf("%w: decode response (status %d): %w", domain.ErrTransport, resp.status, err)
	}
	if calc.hasError() {
		return nil, fmt.Errorf("sample %d: %w: %s", query.SampleID, domain.ErrNotFound, serviceError(resp.body))
	}
	if resp.status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrTransport, resp.status)
	}
	if calc.DailyKWh == nil || calc.YearlyKWh == nil {
		return nil, fmt.Errorf("%w: response missing energy estimates", domain.ErrTransport)
	}

	return &domain.EnergyEstimate{
		SampleID:  query.SampleID,
		DailyKWh:  *calc.DailyKWh,
		YearlyKWh: *calc.YearlyKWh,
	}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
