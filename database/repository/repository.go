package repository

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode maps the fields of a schemaless document onto a typed record.
// Numbers stored where strings are expected (and the reverse) are converted.
// Unknown fields are ignored. On a conversion error the fields that did decode
// are kept in out and the error is returned.
func Decode(fields map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}
