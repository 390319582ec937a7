// cmd/lmdiff/main.go
package main

import (
	cmd "github.com/mwiater/lmdiff/internal/cli"
	"github.com/mwiater/lmdiff/internal/logging"
)

// Seams for tests.
var (
	executeCmd   = cmd.Execute
	closeLogging = logging.Close
)

// main starts the lmdiff CLI application by delegating to the cobra root
// command defined in the lmdiff package.
func main() {
	defer func() { _ = closeLogging() }()
	executeCmd()
}
