// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

package docstore

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/able-wong/firekit/models"
)

// timeLayout is ISO-8601 with millisecond precision, the form
// timestamps take on both wire directions.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// sentinelUnsupported is the string stored for values no wire encoding
// exists for (functions, channels, structs outside time.Time).
const sentinelUnsupported = "__unsupported_type__"

// wireDocument is the remote's typed field-map encoding of one stored
// record.
type wireDocument struct {
	Name       string                    `json:"name"`
	Fields     map[string]map[string]any `json:"fields,omitempty"`
	CreateTime string                    `json:"createTime,omitempty"`
	UpdateTime string                    `json:"updateTime,omitempty"`
}

// decodeDocument converts a wire document into the plain form, deriving
// the synthetic id from the final segment of the resource name.
func decodeDocument(doc wireDocument) models.Document {
	fields := make(map[string]any, len(doc.Fields))
	for k, v := range doc.Fields {
		fields[k] = decodeValue(v)
	}

	id := doc.Name
	if i := strings.LastIndexByte(doc.Name, '/'); i >= 0 {
		id = doc.Name[i+1:]
	}

	return models.Document{
		ID:         id,
		Fields:     fields,
		CreateTime: doc.CreateTime,
		UpdateTime: doc.UpdateTime,
	}
}

// encodePayload shapes a write body. A payload already carrying a
// "fields" map is passed through unchanged for wire-format callers;
// anything else is treated as a plain field map and encoded.
func encodePayload(payload map[string]any) map[string]any {
	if f, ok := payload["fields"]; ok {
		if _, isMap := f.(map[string]any); isMap {
			return payload
		}
	}
	return map[string]any{"fields": encodeFields(payload)}
}

func encodeFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = encodeValue(v)
	}
	return out
}

// encodeValue maps one plain value onto the wire's tagged union. One
// case per semantic type: null, timestamp, boolean, integer, float,
// string, array-of-value, map-of-value; anything else falls through to
// the unsupported sentinel.
func encodeValue(v any) map[string]any {
	switch val := v.(type) {
	case nil:
		return map[string]any{"nullValue": nil}
	case time.Time:
		return map[string]any{"timestampValue": val.UTC().Format(timeLayout)}
	case bool:
		return map[string]any{"booleanValue": val}
	case int:
		return map[string]any{"integerValue": strconv.FormatInt(int64(val), 10)}
	case int8:
		return map[string]any{"integerValue": strconv.FormatInt(int64(val), 10)}
	case int16:
		return map[string]any{"integerValue": strconv.FormatInt(int64(val), 10)}
	case int32:
		return map[string]any{"integerValue": strconv.FormatInt(int64(val), 10)}
	case int64:
		return map[string]any{"integerValue": strconv.FormatInt(val, 10)}
	case uint:
		return map[string]any{"integerValue": strconv.FormatUint(uint64(val), 10)}
	case uint8:
		return map[string]any{"integerValue": strconv.FormatUint(uint64(val), 10)}
	case uint16:
		return map[string]any{"integerValue": strconv.FormatUint(uint64(val), 10)}
	case uint32:
		return map[string]any{"integerValue": strconv.FormatUint(uint64(val), 10)}
	case uint64:
		return map[string]any{"integerValue": strconv.FormatUint(val, 10)}
	case float32:
		return encodeFloat(float64(val))
	case float64:
		return encodeFloat(val)
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return map[string]any{"integerValue": strconv.FormatInt(n, 10)}
		}
		if f, err := val.Float64(); err == nil {
			return encodeFloat(f)
		}
		return map[string]any{"stringValue": val.String()}
	case string:
		return map[string]any{"stringValue": val}
	case []any:
		values := make([]any, len(val))
		for i, item := range val {
			values[i] = encodeValue(item)
		}
		return map[string]any{"arrayValue": map[string]any{"values": values}}
	case map[string]any:
		return map[string]any{"mapValue": map[string]any{"fields": encodeFields(val)}}
	default:
		return encodeReflected(v)
	}
}

// encodeFloat keeps the wire distinction between integral and
// fractional numbers: any float carrying an integral value is stored
// under the integer marker.
func encodeFloat(f float64) map[string]any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return map[string]any{"stringValue": sentinelUnsupported}
	}
	// float64(MaxInt64) rounds up to 2^63, so the bound must be exclusive
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return map[string]any{"integerValue": strconv.FormatInt(int64(f), 10)}
	}
	return map[string]any{"doubleValue": f}
}

// encodeReflected covers typed slices and string-keyed maps that reach
// the codec as concrete types rather than []any / map[string]any.
func encodeReflected(v any) map[string]any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return map[string]any{"nullValue": nil}
		}
		return encodeValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		values := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			values[i] = encodeValue(rv.Index(i).Interface())
		}
		return map[string]any{"arrayValue": map[string]any{"values": values}}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			fields := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				fields[iter.Key().String()] = encodeValue(iter.Value().Interface())
			}
			return map[string]any{"mapValue": map[string]any{"fields": fields}}
		}
	}
	return map[string]any{"stringValue": sentinelUnsupported}
}

// decodeValue restores one tagged wire value to its plain form.
// Timestamps come back as ISO-8601 strings with millisecond precision;
// integers come back as int64 regardless of how the wire spelled them.
func decodeValue(v map[string]any) any {
	if _, ok := v["nullValue"]; ok {
		return nil
	}
	if b, ok := v["booleanValue"].(bool); ok {
		return b
	}
	if raw, ok := v["integerValue"]; ok {
		return decodeInteger(raw)
	}
	if raw, ok := v["doubleValue"]; ok {
		switch f := raw.(type) {
		case float64:
			return f
		case string:
			if parsed, err := strconv.ParseFloat(f, 64); err == nil {
				return parsed
			}
		}
		return nil
	}
	if s, ok := v["timestampValue"].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return ts.UTC().Format(timeLayout)
		}
		return s
	}
	if s, ok := v["stringValue"].(string); ok {
		return s
	}
	if s, ok := v["referenceValue"].(string); ok {
		return s
	}
	if s, ok := v["bytesValue"].(string); ok {
		return s
	}
	if av, ok := v["arrayValue"].(map[string]any); ok {
		items, _ := av["values"].([]any)
		out := make([]any, 0, len(items))
		for _, item := range items {
			inner, ok := item.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, decodeValue(inner))
		}
		return out
	}
	if mv, ok := v["mapValue"].(map[string]any); ok {
		inner, _ := mv["fields"].(map[string]any)
		out := make(map[string]any, len(inner))
		for k, item := range inner {
			innerVal, ok := item.(map[string]any)
			if !ok {
				continue
			}
			out[k] = decodeValue(innerVal)
		}
		return out
	}
	if gp, ok := v["geoPointValue"].(map[string]any); ok {
		return gp
	}
	return nil
}

// decodeInteger accepts the wire's digit-string spelling and the bare
// JSON number some emulators send instead.
func decodeInteger(raw any) any {
	switch n := raw.(type) {
	case string:
		if parsed, err := strconv.ParseInt(n, 10, 64); err == nil {
			return parsed
		}
		return n
	case float64:
		return int64(n)
	case json.Number:
		if parsed, err := n.Int64(); err == nil {
			return parsed
		}
		return n.String()
	}
	return nil
}
