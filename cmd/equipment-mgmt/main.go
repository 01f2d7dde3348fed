package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fabwise/equipment-mgmt/internal/pkg/application/events"
	"github.com/fabwise/equipment-mgmt/internal/pkg/application/monitor"
	"github.com/fabwise/equipment-mgmt/internal/pkg/application/notification"
	"github.com/fabwise/equipment-mgmt/internal/pkg/application/watchdog"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/logging"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/router"
	"github.com/fabwise/equipment-mgmt/internal/pkg/presentation/api"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const serviceName string = "equipment-mgmt"

func main() {
	godotenv.Load()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, buildinfo.SourceVersion())
	logger.Info().Msg("starting up ...")

	repository, err := database.New(newConnector(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	seedFromFiles(ctx, logger, repository)

	cfg := loadMonitorConfig(logger)

	config := messaging.LoadConfiguration(serviceName, logger)
	messenger, err := messaging.Initialize(config)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init messenger")
	}
	defer messenger.Close()

	notifier := notification.New(repository, notification.NewMessagingSender(messenger))
	svc := monitor.New(repository, notifier, messenger, loadEventSender(logger), cfg)

	messenger.RegisterTopicMessageHandler("equipment.metrics", monitor.MetricSampleTopicHandler(messenger, repository))

	w := watchdog.New(svc, cfg.CheckInterval(), logger)
	w.Start()
	defer w.Stop()

	r := router.New(serviceName)
	api.RegisterHandlers(logger, r, svc, repository)

	port := env.GetVariableOrDefault(logger, "SERVICE_PORT", "8080")
	server := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		logger.Info().Msgf("listening on port %s", port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start request router")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down ...")
	server.Shutdown(ctx)
}

func newConnector(logger zerolog.Logger) database.ConnectorFunc {
	if os.Getenv("EQMGMT_SQLDB_HOST") != "" {
		return database.NewPostgreSQLConnector(logger)
	}

	logger.Info().Msg("no database host configured, using in-memory sqlite")
	return database.NewSQLiteConnector(logger)
}

func loadEventSender(logger zerolog.Logger) events.EventSender {
	configFile := env.GetVariableOrDefault(logger, "EQMGMT_NOTIFICATIONS_CONFIG", "/opt/fabwise/config/notifications.yaml")

	f, err := os.Open(configFile)
	if err != nil {
		logger.Warn().Err(err).Msg("no event subscriber configuration, cloud events disabled")
		return events.New(nil)
	}
	defer f.Close()

	cfg, err := events.LoadConfiguration(f)
	if err != nil {
		logger.Fatal().Err(err).Msgf("failed to parse event subscriber configuration %s", configFile)
	}

	return events.New(cfg)
}

func loadMonitorConfig(logger zerolog.Logger) *monitor.Config {
	configFile := env.GetVariableOrDefault(logger, "EQMGMT_MONITOR_CONFIG", "/opt/fabwise/config/monitor.yaml")

	f, err := os.Open(configFile)
	if err != nil {
		logger.Warn().Err(err).Msg("no monitor configuration file, using defaults")
		return monitor.DefaultConfig()
	}
	defer f.Close()

	cfg, err := monitor.LoadConfiguration(f)
	if err != nil {
		logger.Fatal().Err(err).Msgf("failed to parse monitor configuration %s", configFile)
	}

	return cfg
}

func seedFromFiles(ctx context.Context, logger zerolog.Logger, repository database.EquipmentRepository) {
	if equipmentFile := os.Getenv("EQMGMT_EQUIPMENT_FILE"); equipmentFile != "" {
		f, err := os.Open(equipmentFile)
		if err != nil {
			logger.Fatal().Err(err).Msgf("failed to open equipment file %s", equipmentFile)
		}
		defer f.Close()

		err = repository.SeedEquipment(ctx, f)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed equipment")
		}
	}

	if thresholdFile := os.Getenv("EQMGMT_THRESHOLD_FILE"); thresholdFile != "" {
		f, err := os.Open(thresholdFile)
		if err != nil {
			logger.Fatal().Err(err).Msgf("failed to open threshold file %s", thresholdFile)
		}
		defer f.Close()

		err = repository.SeedThresholds(ctx, f)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed thresholds")
		}
	}
}

