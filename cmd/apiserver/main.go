// apiserver serves the utterance augmentation API over HTTP along with
// health probes and Prometheus metrics.  Postgres persistence and the Redis
// vector cache are optional; the server comes up degraded without them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/application/augment"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/config"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/embedding"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/phrase"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/database/postgres"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/database/redis"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/embeddings"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/lexicon"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/interfaces/http"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/interfaces/http/handlers"
)

const metricsNamespace = "uttgen"

func main() {
	configPath := flag.String("config", "", "path to configuration file (empty means environment only)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)
	logger.Info("starting apiserver",
		logging.Int("port", cfg.Server.Port),
		logging.String("mode", cfg.Server.Mode),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := prometheus.NewMetrics(metricsNamespace)

	if cfg.Lexicon.Path == "" {
		return fmt.Errorf("no lexicon configured: set lexicon.path or UTTGEN_LEXICON_PATH")
	}
	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		return err
	}
	logger.Info("lexicon loaded",
		logging.String("path", cfg.Lexicon.Path),
		logging.Int("words", lex.Len()),
	)

	var model embedding.Model
	if cfg.Embeddings.Path != "" {
		m, err := embeddings.Load(cfg.Embeddings.Path)
		if err != nil {
			return err
		}
		model = m
		logger.Info("embedding model loaded",
			logging.String("path", cfg.Embeddings.Path),
			logging.Int("words", len(m)),
		)
	}

	table := phrase.Default()
	if cfg.Generator.PhraseTablePath != "" {
		table, err = phrase.LoadFile(cfg.Generator.PhraseTablePath)
		if err != nil {
			return err
		}
	}

	readiness := map[string]handlers.Pinger{}

	if cfg.Redis.Enabled && model != nil {
		redisClient, err := redis.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		model = redis.NewVectorCache(redisClient, model, logger,
			redis.WithPrefix(cfg.Redis.KeyPrefix),
			redis.WithTTL(cfg.Redis.DefaultTTL),
			redis.WithRecorder(metrics),
		)
		readiness["redis"] = handlers.PingerFunc(redisClient.Ping)
	}

	var repo augment.BatchRepository
	if cfg.Database.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		repo = postgres.NewBatchRepository(pool, logger)
		readiness["postgres"] = handlers.PingerFunc(pool.Ping)
	}

	service := augment.NewService(augment.Deps{
		Resolver:  lex,
		Lexicon:   lex,
		Model:     model,
		Table:     table,
		Repo:      repo,
		Metrics:   metrics,
		Logger:    logger,
		Threshold: cfg.Generator.SimilarityThreshold,
		Seed:      cfg.Generator.ShuffleSeed,
	})

	router := httpserver.NewRouter(httpserver.RouterConfig{
		GenerateHandler: handlers.NewGenerateHandler(service),
		HealthHandler:   handlers.NewHealthHandler(readiness),
		MetricsHandler:  metrics.Handler(),
		MetricsObserver: metrics,
		Logger:          logger,
		Mode:            cfg.Server.Mode,
	})

	server := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		return err
	}
	logger.Info("apiserver stopped")
	return nil
}
