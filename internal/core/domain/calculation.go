package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CalculationQuery asks the calculation service for the energy estimate of one sample.
type CalculationQuery struct {
	SampleID int64
}

// ParseCalculationQuery validates user input. The value must be present and
// an integer; its range is not checked.
func ParseCalculationQuery(raw string) (CalculationQuery, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return CalculationQuery{}, fmt.Errorf("%w: sample id is required", ErrValidation)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return CalculationQuery{}, fmt.Errorf("%w: sample id %q is not an integer", ErrValidation, s)
	}
	return CalculationQuery{SampleID: id}, nil
}

// EnergyEstimate is the success body of the calculation service.
type EnergyEstimate struct {
	SampleID  int64
	DailyKWh  float64
	YearlyKWh float64
}

// CalculationOutcome classifies a calculation response.
type CalculationOutcome string

// Possible calculation outcomes.
const (
	CalculationFound          CalculationOutcome = "found"
	CalculationNotFound       CalculationOutcome = "not_found"
	CalculationTransportError CalculationOutcome = "transport_error"
	CalculationInvalid        CalculationOutcome = "invalid"
)

// User-facing calculation messages.
const (
	MessageSampleNotFound = "Sample ID not found. Enter a correct ID."
	MessageBackendError   = "Backend error. Check server."
	MessageInvalidSample  = "Enter a numeric Sample ID."
)

// CalculationResult is the outcome of one calculation request.
type CalculationResult struct {
	Outcome   CalculationOutcome
	SampleID  int64
	DailyKWh  float64
	YearlyKWh float64

	// Err holds the underlying error for every outcome except Found.
	Err error
}

// Found reports whether the sample had an estimate.
func (r CalculationResult) Found() bool {
	return r.Outcome == CalculationFound
}

// Message renders the result text shown to the user.
func (r CalculationResult) Message() string {
	switch r.Outcome {
	case CalculationFound:
		return fmt.Sprintf(
			"Sample ID: %d\nEstimated Daily Energy: %s kWh\nEstimated Yearly Energy: %s kWh",
			r.SampleID, FormatNumber(r.DailyKWh), FormatNumber(r.YearlyKWh),
		)
	case CalculationNotFound:
		return MessageSampleNotFound
	case CalculationInvalid:
		return MessageInvalidSample
	case CalculationTransportError:
		return MessageBackendError
	default:
		return MessageBackendError
	}
}

// FormatNumber prints a float in its shortest decimal form (10.5, 3832.5, 12).
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
