// Command coachctl is the admin CLI of the coaching engine: schema migrations,
// manual weekly pipeline runs, TDEE bootstrap and the MCP stdio server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
