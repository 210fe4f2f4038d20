package common

import (
	"fmt"
	"sort"
	"strings"
)

// TextFormat is the human readable output of a command. Every other format
// is one of DefaultEncodes.
const TextFormat = "text"

// FormatFlag is a pflag.Value accepting TextFormat and the names of
// DefaultEncodes.
type FormatFlag string

func Formats() []string {
	formats := []string{TextFormat}
	for name := range DefaultEncodes {
		formats = append(formats, name)
	}
	sort.Strings(formats[1:])

	return formats
}

func (f *FormatFlag) Type() string {
	return "format"
}

func (f *FormatFlag) String() string {
	return string(*f)
}

func (f *FormatFlag) Set(value string) error {
	if err := FormatFlag(value).Check(); err != nil {
		return err
	}

	*f = FormatFlag(value)
	return nil
}

func (f FormatFlag) Check() error {
	for _, name := range Formats() {
		if string(f) == name {
			return nil
		}
	}

	return fmt.Errorf("unknown format %q, expected one of {%s}", string(f), strings.Join(Formats(), ", "))
}

// Encode returns the encoder of the format; it is nil for TextFormat.
func (f FormatFlag) Encode() Encode {
	return DefaultEncodes[string(f)]
}
