// Package main provides the rigbook CLI for keeping a computer inventory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Execute(ctx)
	stop()
	os.Exit(code)
}
