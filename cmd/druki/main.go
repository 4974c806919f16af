// Command druki serves the Sejm prints API and queries prints and votes
// from the command line.
//
//	@title			Sejm Prints API
//	@version		1.0
//	@description	Legislative prints of the Polish Sejm with derived classification and citizen voting.
//	@BasePath		/api/v1
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
