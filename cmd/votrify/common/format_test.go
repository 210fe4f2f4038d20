package common

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestFormats(t *testing.T) {
	require.Equal(t, []string{"text", "json", "prettyjson", "yaml"}, Formats())
}

func TestFormatFlag(t *testing.T) {
	format := FormatFlag(TextFormat)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&format, "format", "output format")

	require.Nil(t, format.Encode())

	require.NoError(t, fs.Parse([]string{"--format", "yaml"}))
	require.Equal(t, "yaml", format.String())
	require.NotNil(t, format.Encode())

	err := fs.Parse([]string{"--format", "xml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown format "xml"`)
	require.Equal(t, "yaml", format.String())
}

func TestFormatFlagCheck(t *testing.T) {
	require.NoError(t, FormatFlag("prettyjson").Check())
	require.Error(t, FormatFlag("").Check())
	require.Error(t, FormatFlag("JSON").Check())
}
