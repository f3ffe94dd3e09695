package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Format names an output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var serializers = make(Serializers)

type Serializers map[Format]Serializer

// Serializer is the interface that wraps the basic serialization method
type Serializer interface {

	// Encode encodes the input into the output
	Encode(input any, output io.Writer) error
}

// SerializerFunc adapts a function to Serializer
type SerializerFunc func(input any, output io.Writer) error

func (f SerializerFunc) Encode(input any, output io.Writer) error {
	return f(input, output)
}

// Register registers a serializer for a format
func Register(format Format, serializer Serializer) {
	serializers[format] = serializer
}

// Encode encodes input using the serializer registered for format
func Encode(format Format, input any, output io.Writer) error {
	if serializer, ok := serializers[format]; ok {
		return serializer.Encode(input, output)
	}

	return fmt.Errorf("no serializer found for format %q", format)
}

// Formats returns the registered format names, sorted
func Formats() []string {
	out := make([]string, 0, len(serializers))
	for f := range serializers {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}

func init() {
	Register(FormatJSON, SerializerFunc(func(input any, output io.Writer) error {
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		return enc.Encode(input)
	}))
	Register(FormatYAML, SerializerFunc(func(input any, output io.Writer) error {
		enc := yaml.NewEncoder(output)
		enc.SetIndent(2)
		if err := enc.Encode(input); err != nil {
			return err
		}
		return enc.Close()
	}))
}
