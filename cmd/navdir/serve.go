package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/navdir"
	navhttp "github.com/fwojciec/navdir/http"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds the graceful shutdown of the web client.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := deps.Config.Addr
	if c.Addr != "" {
		addr = c.Addr
	}
	output := deps.Config.Output
	if c.Output != "" {
		output = c.Output
	}

	server := navhttp.NewServer(deps.store(output), deps.Logger)
	fmt.Fprintf(deps.Stdout, "Serving %s on %s\n", output, addr)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		return server.ListenAndServe(addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}
	return nil
}
