// Package main starts the SwipeKeys server.
package main

import (
	"flag"
	"os"
)

// main is the entrypoint for the SwipeKeys server.
func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	check := flag.Bool("check", false, "Validate the configured keymap and exit")
	flag.Parse()

	if *check {
		if err := checkKeymap(os.Stdout); err != nil {
			logFatal(err)
		}
		return
	}
	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
