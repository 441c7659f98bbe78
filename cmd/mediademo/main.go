// Command mediademo serves a small shop that is rendered in a mobile, tablet
// or full version depending on the visitor's device and choice.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
