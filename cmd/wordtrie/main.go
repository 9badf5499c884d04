package main

import "os"

func main() {
	if err := newRootCmd(&cliOptions{}).Execute(); err != nil {
		os.Exit(1)
	}
}
