// Command ccsim detects structural similarity between C++ function
// bodies, for spotting copy-paste reuse across a corpus.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
