//go:build integration
// +build integration

package main

import (
	"os"
	"strings"
	"testing"

	"github.com/votrify/votrify/cmd/votrify/cmd"
)

// Run the program as a test, against the real gpg and countify. Test
// arguments are filtered out before the remaining ones are handed to the
// commands.
func TestIntegration(t *testing.T) {
	var filteredArgs []string
	for _, arg := range os.Args[1:] {
		if strings.HasPrefix(arg, "-test.") {
			continue
		}
		filteredArgs = append(filteredArgs, arg)
	}
	cmd.SetArgs(filteredArgs)
	main()
}
