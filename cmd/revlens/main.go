// cmd/revlens/main.go
package main

import (
	cmd "github.com/mwiater/revlens/internal/cli"
)

// main starts the revlens CLI application by delegating to the
// cobra root command defined in the revlens package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
