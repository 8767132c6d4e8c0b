// Package json routes encoding through goccy/go-json so call sites keep the
// encoding/json shape.
package json

import (
	"io"

	"github.com/goccy/go-json"
)

type Decoder = json.Decoder

func Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

func Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// NewStrictDecoder returns a decoder that rejects fields the target does not declare.
func NewStrictDecoder(r io.Reader) *Decoder {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec
}
