package main

import (
	"os"
	"os/signal"
	"syscall"

	howtohttp "github.com/fwojciec/howto/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled or
// the process receives SIGINT or SIGTERM.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := howtohttp.NewServer(c.Addr)
	server.HowTo = deps.Service
	server.Prompter = deps.Prompter
	server.Logger = deps.Logger

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Logger.Info("listening", "addr", c.Addr, "prompt", deps.Prompter != nil)
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-ctx.Done()
		return server.Close()
	})
	return g.Wait()
}
