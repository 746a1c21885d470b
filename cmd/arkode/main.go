package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// printBanner displays a short banner when run interactively without args.
func printBanner() {
	fmt.Println(`
      _   ___ _  _____  ___  ___
     /_\ | _ \ |/ / _ \|   \| __|
    / _ \|   / ' < (_) | |) | _|
   /_/ \_\_|_\_|\_\___/|___/|___|  OS

  Agency dashboard client

  Usage: arkode <command> [options]
         arkode --help`)
}

func main() {
	if len(os.Args) < 2 && term.IsTerminal(int(os.Stdout.Fd())) {
		printBanner()
		return
	}

	app := newCLIApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
