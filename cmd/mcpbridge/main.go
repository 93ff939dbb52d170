package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/tlsconfig"
	"github.com/danny0094/mcp-bridge-stack/audit"
	"github.com/danny0094/mcp-bridge-stack/cfg"
	"github.com/danny0094/mcp-bridge-stack/decision"
	"github.com/danny0094/mcp-bridge-stack/forwarder"
	"github.com/danny0094/mcp-bridge-stack/handler"
	"github.com/danny0094/mcp-bridge-stack/jsonclient"
	"github.com/danny0094/mcp-bridge-stack/metrics"
	"github.com/danny0094/mcp-bridge-stack/models"
	"github.com/danny0094/mcp-bridge-stack/registry"
	"github.com/danny0094/mcp-bridge-stack/router"
	"github.com/danny0094/mcp-bridge-stack/watcher"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	if err := mainWithError(); err != nil {
		log.Fatalf("%s", err)
	}
}

func mainWithError() error {
	config, err := cfg.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.SetLevel(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient, err := buildHTTPClient(config.Forward.BackendCAFile)
	if err != nil {
		return fmt.Errorf("building http client: %w", err)
	}

	recorder := metrics.Recorder{}
	snapshotRepo := &models.SnapshotRepo{}
	loader := &registry.Loader{
		Source:       &registry.FileSource{Path: config.Registry.Path},
		SnapshotRepo: snapshotRepo,
		Metrics:      recorder,
	}

	// a failed first load is not fatal; the watcher keeps retrying
	if _, err := loader.Load(); err != nil {
		log.WithError(err).Warn("starting without a route table")
	}

	events, err := buildEventWriter(ctx, config.AuditDB)
	if err != nil {
		return fmt.Errorf("opening audit writer: %w", err)
	}
	defer events.Close()

	var delegate *decision.Client
	if config.Routing.Mode == router.ModeDelegate {
		delegate = &decision.Client{
			URL:        config.Decision.URL,
			JSONClient: &jsonclient.JSONClient{HTTPClient: httpClient},
			Timeout:    config.Decision.Timeout,
		}
	}

	routeResolver := &router.Router{
		SnapshotRepo: snapshotRepo,
		Mode:         config.Routing.Mode,
		FallbackID:   config.Routing.FallbackID,
	}
	if delegate != nil {
		routeResolver.Delegate = delegate
	}

	marshaler := marshal.MarshalFunc(json.Marshal)
	mux := handler.NewMux(
		&handler.BridgeHandler{
			Marshaler:   marshaler,
			Unmarshaler: marshal.UnmarshalFunc(json.Unmarshal),
			Router:      routeResolver,
			Forwarder:   &forwarder.Forwarder{HTTPClient: httpClient, Timeout: config.Forward.Timeout},
			Events:      events,
			Metrics:     recorder,
		},
		&handler.ManifestHandler{Marshaler: marshaler, SnapshotRepo: snapshotRepo},
		&handler.HealthHandler{Marshaler: marshaler},
		metrics.DefaultMetrics.Handler,
	)

	go (&watcher.Watcher{
		Loader:       loader,
		SnapshotRepo: snapshotRepo,
		Interval:     config.Registry.ReloadInterval,
	}).Run(ctx)

	server := &http.Server{
		Addr:              config.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"addr": config.ListenAddr,
			"mode": config.Routing.Mode,
		}).Info("bridge listening")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func buildHTTPClient(caFile string) (*http.Client, error) {
	if caFile == "" {
		return &http.Client{}, nil
	}

	tlsConfig, err := tlsconfig.
		Build(tlsconfig.WithInternalServiceDefaults()).
		Client(tlsconfig.WithAuthorityFromFile(caFile))
	if err != nil {
		return nil, err
	}

	return &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: tlsConfig,
		},
	}, nil
}

func buildEventWriter(ctx context.Context, path string) (audit.EventWriter, error) {
	if path == "" {
		return audit.NewLogWriter(), nil
	}
	return audit.NewSQLiteWriter(ctx, path)
}
