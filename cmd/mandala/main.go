// Command mandala computes numerology readings from the terminal.
package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr, time.Now).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
