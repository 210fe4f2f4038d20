package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecRunnerCapturesOutput(t *testing.T) {
	if IsNotExists("/bin/sh") {
		t.Skip("no /bin/sh")
	}

	r := NewExecRunner()
	out, err := r.Run(Command{
		Name:  "/bin/sh",
		Args:  []string{"-c", "cat; echo oops >&2; exit 3"},
		Stdin: []byte("payload"),
	})
	require.NoError(t, err)
	require.Equal(t, "payload", string(out.Stdout))
	require.Equal(t, "oops\n", string(out.Stderr))
	require.Equal(t, 3, out.ExitCode)
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := NewExecRunner()
	_, err := r.Run(Command{Name: "/nonexistent/votrify-no-such-tool"})
	require.Error(t, err)
}

func TestTestRunnerRecordsCalls(t *testing.T) {
	r := &TestRunner{
		Handler: func(cmd Command) (Output, error) {
			return Output{Stdout: []byte(cmd.Args[0])}, nil
		},
	}

	out, err := r.Run(Command{Name: "gpg", Args: []string{"--version"}})
	require.NoError(t, err)
	require.Equal(t, "--version", string(out.Stdout))
	require.Equal(t, 1, len(r.Calls))
	require.Equal(t, "gpg --version", r.Calls[0].String())
}
