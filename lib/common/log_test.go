package common

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	logging "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/require"

	"github.com/votrify/votrify/lib/errors"
)

func TestJSONLogFormat(t *testing.T) {
	var buf bytes.Buffer

	l := logging.New("module", "test")
	l.SetHandler(logging.StreamHandler(&buf, JSONLogFormat()))

	l.Info(
		"engine failed",
		"error", errors.VoteMismatch.Clone().SetData("diff", "-alice\n+bob\n"),
		"command", Command{Name: "gpg", Args: []string{"--verify", "a.asc"}},
		"stdout", []byte("no results"),
		"exit-code", 2,
	)

	require.True(t, strings.HasSuffix(buf.String(), "}\n"))
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	require.Equal(t, "engine failed", record["msg"])
	require.Equal(t, "info", record["lvl"])
	require.Equal(t, "test", record["module"])
	require.Equal(t, "gpg --verify a.asc", record["command"])
	require.Equal(t, "no results", record["stdout"])
	require.Equal(t, float64(2), record["exit-code"])

	e := record["error"].(map[string]interface{})
	require.Equal(t, float64(201), e["code"])
	require.Equal(t, "-alice\n+bob\n", e["data"].(map[string]interface{})["diff"])
}

func TestJSONLogFormatPlainError(t *testing.T) {
	var buf bytes.Buffer

	l := logging.New()
	l.SetHandler(logging.StreamHandler(&buf, JSONLogFormat()))

	var nilError *errors.Error
	l.Debug("failed", "error", json.Unmarshal([]byte("{"), &struct{}{}), "coded", nilError)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "unexpected end of JSON input", record["error"])
	require.Nil(t, record["coded"])
}
