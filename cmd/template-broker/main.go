package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"

	"github.com/diwise/template-broker/internal/pkg/application/catalog"
	"github.com/diwise/template-broker/internal/pkg/application/notifications"
	"github.com/diwise/template-broker/internal/pkg/infrastructure/router"
	"github.com/diwise/template-broker/internal/pkg/presentation/api"
)

const serviceName string = "template-broker"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	cfg := LoadConfiguration(ctx)

	policies, err := os.Open(cfg.policyPath)
	if err != nil {
		log.Error("unable to open opa policy file", "path", cfg.policyPath, "err", err.Error())
		os.Exit(1)
	}
	defer policies.Close()

	var catalogConfig io.Reader

	catalogFile, err := os.Open(cfg.catalogConfigPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Error("unable to open catalog configuration", "path", cfg.catalogConfigPath, "err", err.Error())
			os.Exit(1)
		}
		log.Warn("no catalog configuration found, starting with an empty catalog", "path", cfg.catalogConfigPath)
	} else {
		defer catalogFile.Close()
		catalogConfig = catalogFile
	}

	r, stop, err := initialize(ctx, cfg, catalogConfig, policies)
	if err != nil {
		log.Error("failed to initialize service", "err", err.Error())
		os.Exit(1)
	}
	defer stop()

	log.Info("starting to listen for connections", "port", cfg.servicePort)

	err = http.ListenAndServe(":"+cfg.servicePort, r)
	if err != nil {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

// initialize wires the catalog, the notifier and the api into a router. The
// returned func stops any background work and should be called on shutdown.
func initialize(ctx context.Context, cfg *AppConfig, catalogConfig, policies io.Reader) (*chi.Mux, func(), error) {
	log := logging.GetFromContext(ctx)

	var seed *catalog.Config
	var err error

	if catalogConfig != nil {
		seed, err = catalog.LoadConfiguration(catalogConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog configuration: %w", err)
		}
	}

	var notifier notifications.Notifier
	stop := func() {}

	if cfg.notifierEndpoint != "" {
		notifier, err = notifications.NewNotifier(ctx, cfg.notifierEndpoint)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create notifier: %w", err)
		}

		err = notifier.Start()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start notifier: %w", err)
		}

		log.Info("posting notifications", "endpoint", cfg.notifierEndpoint)

		stop = func() {
			if err := notifier.Stop(); err != nil {
				log.Error("failed to stop notifier", "err", err.Error())
			}
		}
	}

	app, err := catalog.New(ctx, seed, notifier)
	if err != nil {
		stop()
		return nil, nil, err
	}

	r := router.New(ctx, serviceName)

	err = api.RegisterHandlers(ctx, r, policies, app)
	if err != nil {
		stop()
		return nil, nil, err
	}

	return r, stop, nil
}
