package main

import (
	"github.com/votrify/votrify/cmd/votrify/cmd"
)

func main() {
	cmd.Execute()
}
