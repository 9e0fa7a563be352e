// Command moniker generates human-readable random names like "rusty-nail".
package main

import (
	"os"

	"github.com/jmgilman/moniker/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
