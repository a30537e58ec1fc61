package mcp

import (
	"context"
	"os"
	"time"

	"lustre/internal/logging"
)

// WatchParent polls the parent PID in a background goroutine and calls
// cancel when it changes, so an orphaned stdio server shuts down instead
// of lingering. It must never read stdin; the SDK's StdioTransport owns
// stdin exclusively and stolen bytes would corrupt the JSON-RPC stream.
func WatchParent(ctx context.Context, cancel context.CancelFunc) {
	ppid := os.Getppid()
	log := logging.New("mcp")
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
				if os.Getppid() != ppid {
					log.Warn("parent process died, shutting down", "was_pid", ppid)
					cancel()
					return
				}
			}
		}
	}()
}
