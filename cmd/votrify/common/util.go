package common

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/votrify/votrify/lib/errors"
)

/**
 * Issue a message on Stderr then exit with an error code
 */
func PrintFlagsError(cmd *cobra.Command, flagName string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid '%s'; %s\n\n", flagName, ErrorMessage(err))
	}

	cmd.Help()

	os.Exit(1)
}

// PrintError prints err with its payload, like the diff of a mismatched
// vote, and exits.
func PrintError(cmd *cobra.Command, err error) {
	FprintError(os.Stderr, err)

	os.Exit(1)
}

func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var s string
	if votrifyError, ok := err.(*errors.Error); ok {
		s = votrifyError.Describe()
	} else {
		s = err.Error()
	}

	fmt.Fprintf(w, "error: %s\n", s)
}

// ErrorMessage is the one line summary of err.
func ErrorMessage(err error) string {
	if votrifyError, ok := err.(*errors.Error); ok {
		return votrifyError.Message
	}

	return err.Error()
}
