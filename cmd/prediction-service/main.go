package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	pcache "github.com/Priyanshu0707/prediction-service/internal/prediction-service/cache"
	phttp "github.com/Priyanshu0707/prediction-service/internal/prediction-service/http"
	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/producer"
	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/repo"
	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/service"
	"github.com/Priyanshu0707/prediction-service/internal/shared/cache"
	"github.com/Priyanshu0707/prediction-service/internal/shared/config"
	"github.com/Priyanshu0707/prediction-service/internal/shared/db"
	skafka "github.com/Priyanshu0707/prediction-service/internal/shared/kafka"
	"github.com/Priyanshu0707/prediction-service/internal/shared/logger"
	"github.com/Priyanshu0707/prediction-service/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	// Postgres + migrações
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()

	if err := db.RunMigrations(cfg.PostgresDSN); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	// Redis é opcional: sem ele a listagem só perde o cache
	var listingCache *pcache.Cache
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Warn("redis indisponível, seguindo sem cache de listagem", zap.Error(err))
	} else {
		listingCache = pcache.New(rdb)
	}

	// Kafka é opcional: sem brokers configurados nenhum evento é emitido
	var publ service.Publisher
	if cfg.KafkaBrokers != "" {
		pw := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicPredictionCreated)
		ow := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicOpinionPlaced)
		defer pw.Close()
		defer ow.Close()
		publ = producer.NewKafkaPublisher(pw, ow)
	}

	// deps
	repository := repo.NewPostgres(pg)
	predictions := service.NewPredictionService(log, repository, listingCache, publ)
	opinions := service.NewOpinionService(log, repository, repository, publ)

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	api := phttp.NewServer(log, predictions, opinions, cfg.Env != "prod", limiter)

	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health em porta separada
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		if rdb != nil {
			return rdb.Ping(ctx).Err()
		}
		return nil
	})
	defer metricsSrv.Close()

	go func() {
		log.Info("prediction-service listening", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("api", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(shutdownCtx)
	log.Info("shutdown concluído")
}
