package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_Errors verifies that error values are reduced to their
// message string.
func TestNormalize_Errors(t *testing.T) {
	got := Normalize(map[string]any{"err": errors.New("boom")})
	assert.Equal(t, "boom", got["err"])
}

// TestNormalize_Times verifies that time values and RFC 3339 strings are
// reformatted to ISO-8601 with millisecond precision in UTC.
func TestNormalize_Times(t *testing.T) {
	moment := time.Date(2026, time.March, 14, 9, 26, 53, 589_000_000, time.UTC)

	t.Run("time.Time value", func(t *testing.T) {
		got := Normalize(map[string]any{"at": moment})
		assert.Equal(t, "2026-03-14T09:26:53.589Z", got["at"])
	})

	t.Run("time.Time in non-UTC zone", func(t *testing.T) {
		zone := time.FixedZone("plus2", 2*60*60)
		got := Normalize(map[string]any{"at": moment.In(zone)})
		assert.Equal(t, "2026-03-14T09:26:53.589Z", got["at"])
	})

	t.Run("RFC 3339 string", func(t *testing.T) {
		got := Normalize(map[string]any{"at": "2026-03-14T11:26:53.589123+02:00"})
		assert.Equal(t, "2026-03-14T09:26:53.589Z", got["at"])
	})

	t.Run("non-date string untouched", func(t *testing.T) {
		got := Normalize(map[string]any{"note": "not a date"})
		assert.Equal(t, "not a date", got["note"])
	})
}

// TestNormalize_Scalars verifies pass-through of booleans, numbers and
// plain strings.
func TestNormalize_Scalars(t *testing.T) {
	got := Normalize(map[string]any{
		"ok":    true,
		"count": 42,
		"ratio": 0.5,
		"label": "plain",
	})

	assert.Equal(t, true, got["ok"])
	assert.Equal(t, 42, got["count"])
	assert.Equal(t, 0.5, got["ratio"])
	assert.Equal(t, "plain", got["label"])
}

// TestNormalize_Composites verifies that slices and maps collapse to
// compact JSON strings.
func TestNormalize_Composites(t *testing.T) {
	got := Normalize(map[string]any{
		"tags": []string{"a", "b"},
		"meta": map[string]any{"k": 1},
	})

	assert.JSONEq(t, `["a","b"]`, got["tags"].(string))
	assert.JSONEq(t, `{"k":1}`, got["meta"].(string))
}

// TestNormalize_Nil verifies that nil becomes the string "null".
func TestNormalize_Nil(t *testing.T) {
	got := Normalize(map[string]any{"gone": nil})
	assert.Equal(t, "null", got["gone"])
}

// TestNormalize_EmptyInput verifies that empty and nil maps normalize
// to nil without panicking.
func TestNormalize_EmptyInput(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Nil(t, Normalize(map[string]any{}))
}

// TestWithNormalized_EmitsFlatFields verifies that the child logger
// emits the normalized values on its entries.
func TestWithNormalized_EmitsFlatFields(t *testing.T) {
	var buf bytes.Buffer
	base := &Logger{zerolog.New(&buf)}

	child := base.WithNormalized(map[string]any{
		"err":  errors.New("remote refused"),
		"tags": []int{1, 2},
	})
	child.Info().Msg("flattened")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "remote refused", entry["err"])
	assert.JSONEq(t, `[1,2]`, entry["tags"].(string))
}
