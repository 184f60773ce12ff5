package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// AnalysisResult is the opaque value returned by the analysis service.
//
// It holds the exact bytes received so key order and number formatting
// survive rendering and export. The zero value is an empty result.
type AnalysisResult struct {
	raw json.RawMessage
}

// NewAnalysisResult wraps a JSON document. It returns ErrInvalidInput if the
// bytes are not syntactically valid JSON. The shape is not checked.
func NewAnalysisResult(data []byte) (AnalysisResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return AnalysisResult{}, fmt.Errorf("%w: response is not JSON", ErrInvalidInput)
	}
	raw := make(json.RawMessage, len(trimmed))
	copy(raw, trimmed)
	return AnalysisResult{raw: raw}, nil
}

// IsZero reports whether the result holds no document.
func (r AnalysisResult) IsZero() bool {
	return len(r.raw) == 0
}

// Raw returns a copy of the bytes as received (surrounding whitespace trimmed).
func (r AnalysisResult) Raw() []byte {
	out := make([]byte, len(r.raw))
	copy(out, r.raw)
	return out
}

// Indented returns the document with 2-space indentation.
// Field order and number literals are kept exactly as received, so repeated
// calls on the same result are byte-identical.
func (r AnalysisResult) Indented() []byte {
	if r.IsZero() {
		return []byte("null")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.raw, "", "  "); err != nil {
		// raw was validated on construction
		return r.Raw()
	}
	return buf.Bytes()
}

// String implements fmt.Stringer with the indented form.
func (r AnalysisResult) String() string {
	return string(r.Indented())
}

// Decode unmarshals the document into v.
func (r AnalysisResult) Decode(v any) error {
	if r.IsZero() {
		return ErrNoActiveResult
	}
	return json.Unmarshal(r.raw, v)
}

// Equal reports whether two results hold semantically identical JSON.
func (r AnalysisResult) Equal(other AnalysisResult) bool {
	var a, b any
	if err := r.decodeNumbers(&a); err != nil {
		return false
	}
	if err := other.decodeNumbers(&b); err != nil {
		return false
	}
	return jsonEqual(a, b)
}

// SampleIDs returns the sample_id values found at the top level or in a
// top-level "samples" array, in document order. Non-scalar ids are skipped.
func (r AnalysisResult) SampleIDs() []string {
	var doc any
	if err := r.decodeNumbers(&doc); err != nil {
		return nil
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil
	}

	var ids []string
	if id, ok := scalarString(obj["sample_id"]); ok {
		ids = append(ids, id)
	}
	samples, _ := obj["samples"].([]any)
	for _, s := range samples {
		sample, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := scalarString(sample["sample_id"]); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// MarshalJSON emits the raw document unchanged.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return r.Raw(), nil
}

// UnmarshalJSON stores the document as received.
func (r *AnalysisResult) UnmarshalJSON(data []byte) error {
	res, err := NewAnalysisResult(data)
	if err != nil {
		return err
	}
	*r = res
	return nil
}

func (r AnalysisResult) decodeNumbers(v any) error {
	if r.IsZero() {
		return ErrNoActiveResult
	}
	dec := json.NewDecoder(bytes.NewReader(r.raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func scalarString(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, id != ""
	case json.Number:
		return id.String(), true
	default:
		return "", false
	}
}

// jsonEqual compares values decoded with UseNumber. Numbers are compared by
// value so 1.50 and 1.5 match.
func jsonEqual(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, ok := bv[k]
			if !ok || !jsonEqual(v, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !jsonEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case json.Number:
		bv, ok := b.(json.Number)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		af, aerr := strconv.ParseFloat(av.String(), 64)
		bf, berr := strconv.ParseFloat(bv.String(), 64)
		return aerr == nil && berr == nil && af == bf
	default:
		return a == b
	}
}
