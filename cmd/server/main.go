package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/talentgraph/jobsbridge/internal/config"
	"github.com/talentgraph/jobsbridge/internal/mcp"
	"github.com/talentgraph/jobsbridge/pkg/logging"
	"github.com/talentgraph/jobsbridge/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := mcp.BuildResources(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to build resources", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, res)

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("jobsbridge initialized and starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
		"graphql_api", cfg.GraphQLAPIURL,
	)

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
