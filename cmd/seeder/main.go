package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/leaderboard-seeder/internal/generator"
	"github.com/noah-isme/leaderboard-seeder/internal/repository"
	"github.com/noah-isme/leaderboard-seeder/internal/service"
	"github.com/noah-isme/leaderboard-seeder/pkg/cache"
	"github.com/noah-isme/leaderboard-seeder/pkg/config"
	"github.com/noah-isme/leaderboard-seeder/pkg/database"
	appErrors "github.com/noah-isme/leaderboard-seeder/pkg/errors"
	"github.com/noah-isme/leaderboard-seeder/pkg/logger"
	"github.com/noah-isme/leaderboard-seeder/pkg/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Printf("failed to init logger: %v", err)
		return 1
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Error("failed to connect database", zap.Error(err))
		return 1
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	if cfg.Leaderboard.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, leaderboard disabled", zap.Error(err))
			redisClient = nil
		}
	}
	leaderboardRepo := repository.NewLeaderboardRepository(redisClient, logr)
	defer leaderboardRepo.Close() //nolint:errcheck

	seed := cfg.Seed.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	domain := generator.DefaultConfig()
	domain.DefaultPassword = cfg.Seed.DefaultPassword

	gen, err := generator.New(domain, generator.Dependencies{
		IDs:     generator.NewAllocator(cfg.Seed.IDStrategy),
		Sampler: generator.NewRandSampler(seed),
		Text:    generator.NewFakerText(seed),
		Hasher:  service.NewBcryptHasher(cfg.Seed.BcryptCost),
		Logger:  logr.Named("generator"),
	})
	if err != nil {
		logr.Error("failed to configure generator", zap.Error(err))
		return 1
	}

	outputs := service.SideOutputs{}
	if cfg.Roster.Enabled {
		local, err := storage.NewLocalStorage(cfg.Roster.ExportDir)
		if err != nil {
			logr.Warn("roster export disabled", zap.Error(err))
		} else {
			outputs.Roster = service.NewRosterService(local, cfg.Seed.DefaultPassword, logr, nil, nil)
		}
	}
	if leaderboardRepo.Enabled() {
		outputs.Leaderboard = service.NewLeaderboardService(leaderboardRepo, cfg.Leaderboard.Key, logr)
	}

	stores := service.Stores{
		Staff:    repository.NewStaffRepository(db, cfg.Seed.BatchSize),
		Classes:  repository.NewClassRepository(db, cfg.Seed.BatchSize),
		Students: repository.NewStudentRepository(db, cfg.Seed.BatchSize),
		Events:   repository.NewEventRepository(db, cfg.Seed.BatchSize),
	}
	svc := service.NewSeedService(stores, gen, domain, validator.New(), outputs,
		service.NewMetricsService(cfg.Metrics.PushgatewayURL), logr.Named("seed"))

	logr.Info("seeding started",
		zap.Int64("seed", seed),
		zap.String("id_strategy", cfg.Seed.IDStrategy),
		zap.Int("batch_size", cfg.Seed.BatchSize),
	)

	summary, err := svc.Run(ctx)
	fields := []zap.Field{
		zap.Any("generated", summary.Generated),
		zap.Any("inserted", summary.Inserted),
		zap.Duration("duration", summary.Duration),
	}
	if err != nil {
		code := appErrors.FromError(err).Code
		logr.Error("seeding failed", append(fields, zap.String("stage", summary.FailedStage), zap.String("code", code), zap.Error(err))...)
		return 1
	}
	for _, warning := range summary.Warnings {
		logr.Warn("seeding warning", zap.String("detail", warning))
	}
	logr.Info("seeding completed", append(fields, zap.Int("leaderboard_members", summary.LeaderboardSize))...)
	return 0
}
