package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{"samples":[{"sample_id":"auto-1a2b3c4d","lat":34.0522,"lon":-118.2437,` +
	`"has_solar":true,"confidence":0.870,"pv_area_sqm_est":12.5,"image_metadata":{"source":"OSM_PUBLIC"},` +
	`"estimated_kwh_per_day":8.335,"estimated_kwh_per_year":3042.28}]}`

func TestNewAnalysisResult_RejectsNonJSON(t *testing.T) {
	_, err := NewAnalysisResult([]byte("<html>502 Bad Gateway</html>"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewAnalysisResult(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewAnalysisResult_AcceptsAnyShape(t *testing.T) {
	for _, doc := range []string{`{}`, `[]`, `"text"`, `42`, `{"unexpected":{"deep":[1,2,{"x":null}]}}`} {
		r, err := NewAnalysisResult([]byte(doc))
		require.NoError(t, err, doc)
		assert.False(t, r.IsZero())
	}
}

func TestAnalysisResult_IndentedPreservesOrderAndNumbers(t *testing.T) {
	r, err := NewAnalysisResult([]byte(`{"z":1.50,"a":{"m":1e3,"b":[true,null]}}`))
	require.NoError(t, err)

	want := "{\n  \"z\": 1.50,\n  \"a\": {\n    \"m\": 1e3,\n    \"b\": [\n      true,\n      null\n    ]\n  }\n}"
	assert.Equal(t, want, string(r.Indented()))
}

func TestAnalysisResult_IndentedIsStable(t *testing.T) {
	r, err := NewAnalysisResult([]byte(sampleResponse))
	require.NoError(t, err)

	assert.Equal(t, r.Indented(), r.Indented())
}

func TestAnalysisResult_RawIsCopy(t *testing.T) {
	r, err := NewAnalysisResult([]byte(`{"a":1}`))
	require.NoError(t, err)

	raw := r.Raw()
	raw[0] = '['

	assert.Equal(t, `{"a":1}`, string(r.Raw()))
}

func TestAnalysisResult_Equal(t *testing.T) {
	a, _ := NewAnalysisResult([]byte(`{"a":1.5,"b":[1,2]}`))
	b, _ := NewAnalysisResult([]byte("{\n  \"b\": [1, 2],\n  \"a\": 1.50\n}"))
	c, _ := NewAnalysisResult([]byte(`{"a":1.5,"b":[2,1]}`))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(AnalysisResult{}))
}

func TestAnalysisResult_SampleIDs(t *testing.T) {
	r, err := NewAnalysisResult([]byte(sampleResponse))
	require.NoError(t, err)
	assert.Equal(t, []string{"auto-1a2b3c4d"}, r.SampleIDs())

	top, _ := NewAnalysisResult([]byte(`{"sample_id":42,"samples":[{"sample_id":"7"},{"other":1},"x"]}`))
	assert.Equal(t, []string{"42", "7"}, top.SampleIDs())

	arr, _ := NewAnalysisResult([]byte(`[1,2]`))
	assert.Nil(t, arr.SampleIDs())
}

func TestAnalysisResult_JSONRoundTrip(t *testing.T) {
	r, err := NewAnalysisResult([]byte(sampleResponse))
	require.NoError(t, err)

	wrapped, err := json.Marshal(map[string]any{"result": r})
	require.NoError(t, err)

	var back struct {
		Result AnalysisResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(wrapped, &back))
	assert.True(t, r.Equal(back.Result))
}

func TestAnalysisResult_Zero(t *testing.T) {
	var r AnalysisResult

	assert.True(t, r.IsZero())
	assert.Equal(t, "null", string(r.Indented()))
	assert.ErrorIs(t, r.Decode(&map[string]any{}), ErrNoActiveResult)
}
