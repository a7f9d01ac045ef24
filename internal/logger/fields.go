package logger

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// timeLayout is ISO-8601 with millisecond precision, the format every
// timestamp field is normalized to before emission.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Normalize flattens heterogeneous metadata values into the flat
// string/number/boolean shape log entries carry:
//
//   - errors become their message string;
//   - time.Time values and RFC 3339 strings become ISO-8601 strings
//     with millisecond precision, in UTC;
//   - booleans, numbers and plain strings pass through unchanged;
//   - slices, maps, structs and pointers become compact JSON strings;
//   - nil becomes the string "null";
//   - anything else falls back to its fmt representation.
//
// The input map is not modified.
func Normalize(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = normalizeValue(v)
	}
	return out
}

// WithNormalized returns a child logger carrying the normalized fields
// on every subsequent entry.
func (l *Logger) WithNormalized(fields map[string]any) *Logger {
	return &Logger{l.With().Fields(Normalize(fields)).Logger()}
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return "null"
	case error:
		return val.Error()
	case time.Time:
		return val.UTC().Format(timeLayout)
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, val); err == nil {
			return ts.UTC().Format(timeLayout)
		}
		return val
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val
	default:
		switch reflect.ValueOf(v).Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Pointer:
			if raw, err := json.Marshal(v); err == nil {
				return string(raw)
			}
		}
		return fmt.Sprintf("%v", v)
	}
}
