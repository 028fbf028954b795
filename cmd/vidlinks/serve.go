package main

import (
	"fmt"

	vlhttp "github.com/fwojciec/vidlinks/http"
	vlprom "github.com/fwojciec/vidlinks/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	svc, err := vlprom.NewExtractionService(deps.Service, reg)
	if err != nil {
		return err
	}

	opts := []vlhttp.ServerOption{
		vlhttp.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	}
	if len(c.CORSOrigins) > 0 {
		opts = append(opts, vlhttp.WithCORS(c.CORSOrigins...))
	}

	server := vlhttp.NewServer(svc, deps.Logger, opts...)
	server.Addr = c.Addr

	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())

	<-deps.Ctx.Done()

	return server.Close()
}
