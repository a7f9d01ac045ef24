package models

import "encoding/json"

// Document is a single record read from the document store, decoded
// into plain Go values.
type Document struct {
	// ID is the last segment of the store-side resource name.
	ID string

	// Fields holds the decoded field values.
	Fields map[string]any

	// CreateTime is the store-reported creation timestamp, kept in
	// its wire form.
	CreateTime string

	// UpdateTime is the store-reported last-update timestamp.
	UpdateTime string
}

// MarshalJSON flattens the document for API responses: the field map
// is emitted at the top level with the synthetic id alongside it. The
// id wins over any stored field of the same name.
func (d Document) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(d.Fields)+1)
	for k, v := range d.Fields {
		flat[k] = v
	}
	flat["id"] = d.ID
	return json.Marshal(flat)
}

// Get returns the named field value and whether it is present.
func (d Document) Get(field string) (any, bool) {
	v, ok := d.Fields[field]
	return v, ok
}
