// Command lvyen times one exact-length path search on a random graph and
// verifies its result.
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		logger := newLogger(os.Stderr, false)
		logger.Error().Err(err).Msg("lvyen failed")
		os.Exit(1)
	}
}
