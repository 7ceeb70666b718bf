package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/natevvv/graph-pathfinder/pkg/routing"
	"github.com/natevvv/graph-pathfinder/pkg/server/openapi_server"
	"github.com/spf13/cobra"
)

var (
	address string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing API over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().StringVarP(&address, "address", "a", ":8081", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("address") {
		cfg.Server.Address = address
	}
	g, err := loadGraph(cfg.Graph, tracer)
	if err != nil {
		return err
	}
	router, err := routing.NewRouter(g, cfg.Search)
	if err != nil {
		return err
	}

	service := openapi_server.NewDefaultApiService(router)
	controller := openapi_server.NewDefaultApiController(service)
	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           openapi_server.NewRouter(logger, controller),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info("Server started", "address", cfg.Server.Address, "nodes", g.Count(), "navigator", router.NavigatorName())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
