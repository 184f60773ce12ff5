package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("api.base_url", "http://localhost:8000"))

	val, ok := store.Get("api.base_url")
	assert.True(t, ok)
	assert.Equal(t, "http://localhost:8000", val)

	require.NoError(t, store.Set("api.base_url", "http://analysis:9000"))
	assert.Equal(t, "http://analysis:9000", store.GetString("api.base_url"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.Zero(t, store.GetFloat("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("api.timeout_seconds", 120)

	assert.Empty(t, store.GetString("api.timeout_seconds"))
}

func TestConfigStore_GetInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"int", 120, 120},
		{"int64 from toml", int64(30), 30},
		{"float64", 48.0, 48},
		{"string", "120", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore()
			_ = store.Set("api.timeout_seconds", tt.value)
			assert.Equal(t, tt.want, store.GetInt("api.timeout_seconds"))
		})
	}
}

func TestConfigStore_GetFloat(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"float64", 2.5, 2.5},
		{"int", 3, 3},
		{"int64 from toml", int64(4), 4},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore()
			_ = store.Set("api.requests_per_second", tt.value)
			assert.InDelta(t, tt.want, store.GetFloat("api.requests_per_second"), 1e-9)
		})
	}
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("export.use_dialog", true)
	_ = store.Set("export.dir", "true")

	assert.True(t, store.GetBool("export.use_dialog"))
	assert.False(t, store.GetBool("export.dir"))
}

func TestConfigStore_SaveAndLoad_NoOp(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("export.dir", "/tmp/out")

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, "/tmp/out", store.GetString("export.dir"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("preview.max_width", n)
			_ = store.GetInt("preview.max_width")
			_, _ = store.Get("preview.max_width")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("preview.max_width")
	assert.True(t, ok)
}
