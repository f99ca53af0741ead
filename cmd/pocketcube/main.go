// Pocket cube optimal solver - CLI for scrambling, displaying and solving
// a 2x2x2 cube.
package main

import (
	"github.com/santanusen/pocketcube/internal/cli"
)

func main() {
	cli.Execute()
}
