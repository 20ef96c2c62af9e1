// Command flashcards manages and studies flashcards from the terminal.
//
// Usage:
//
//	flashcards <command> [flags]
//
// Commands that touch cards need an access token, passed with --token or
// the FLASHCARDS_TOKEN environment variable. Issue one with "flashcards token".
//
// Exit codes: 0 = success, 1 = error, 2 = usage error.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &cli{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	if err := c.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
