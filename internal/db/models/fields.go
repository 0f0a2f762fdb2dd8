// Package models contains database model definitions.
package models

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/goccy/go-json"
)

// ErrNotJSONObject is returned by DecodeBlob for anything but a json object or null.
var ErrNotJSONObject = errors.New("not a json object")

// Body is a decoded json request object.
type Body = map[string]any

// text coerces a json value into the text stored in a column.
// Absent keys, null, objects and arrays become the empty string,
// numbers and booleans their json spelling.
func text(body Body, key string) string {
	switch v := body[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// DecodeBlob decodes a json object and keeps numbers as json.Number literals,
// so they are written back digit for digit. null decodes to an empty Body.
func DecodeBlob(raw []byte) (Body, error) {
	if !json.Valid(raw) {
		return nil, ErrNotJSONObject
	}

	var body Body

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := dec.Decode(&body); err != nil {
		return nil, ErrNotJSONObject
	}

	if body == nil {
		body = Body{}
	}

	return body, nil
}
