// Command ggbridge renders engine frames headlessly through the bridge.
//
//	ggbridge render --frames 60 --out frames/
//	ggbridge replay scene.yaml --watch --config .ggbridge.yaml
//	ggbridge version
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
