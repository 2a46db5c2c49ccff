package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Database    DatabaseConfig
	Redis       RedisConfig
	Log         LogConfig
	Seed        SeedConfig
	Roster      RosterConfig
	Leaderboard LeaderboardConfig
	Metrics     MetricsConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig tunes a single seeding run.
type SeedConfig struct {
	// RandomSeed of zero derives the seed from the clock.
	RandomSeed      int64
	IDStrategy      string
	BatchSize       int
	DefaultPassword string
	BcryptCost      int
}

// RosterConfig gates the credential roster export.
type RosterConfig struct {
	Enabled   bool
	ExportDir string
}

// LeaderboardConfig gates publishing scores to Redis.
type LeaderboardConfig struct {
	Enabled bool
	Key     string
}

// MetricsConfig points run metrics at a Pushgateway. Empty disables pushing.
type MetricsConfig struct {
	PushgatewayURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Seed = SeedConfig{
		RandomSeed:      v.GetInt64("SEED_RANDOM_SEED"),
		IDStrategy:      strings.ToLower(strings.TrimSpace(v.GetString("SEED_ID_STRATEGY"))),
		BatchSize:       v.GetInt("SEED_BATCH_SIZE"),
		DefaultPassword: v.GetString("SEED_DEFAULT_PASSWORD"),
		BcryptCost:      v.GetInt("SEED_BCRYPT_COST"),
	}

	cfg.Roster = RosterConfig{
		Enabled:   v.GetBool("ENABLE_ROSTER_EXPORT"),
		ExportDir: v.GetString("SEED_EXPORT_DIR"),
	}

	cfg.Leaderboard = LeaderboardConfig{
		Enabled: v.GetBool("ENABLE_LEADERBOARD"),
		Key:     v.GetString("LEADERBOARD_KEY"),
	}

	cfg.Metrics = MetricsConfig{
		PushgatewayURL: strings.TrimSpace(v.GetString("METRICS_PUSHGATEWAY_URL")),
	}

	return cfg
}

// Validate rejects settings the seeder cannot run with.
func (c *Config) Validate() error {
	var errs []error
	switch c.Seed.IDStrategy {
	case "uuid", "ulid":
	default:
		errs = append(errs, fmt.Errorf("SEED_ID_STRATEGY must be uuid or ulid, got %q", c.Seed.IDStrategy))
	}
	if c.Seed.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("SEED_BATCH_SIZE must be positive, got %d", c.Seed.BatchSize))
	}
	if c.Seed.DefaultPassword == "" {
		errs = append(errs, errors.New("SEED_DEFAULT_PASSWORD must not be empty"))
	}
	if c.Roster.Enabled && c.Roster.ExportDir == "" {
		errs = append(errs, errors.New("SEED_EXPORT_DIR is required when ENABLE_ROSTER_EXPORT is set"))
	}
	if c.Leaderboard.Enabled && c.Leaderboard.Key == "" {
		errs = append(errs, errors.New("LEADERBOARD_KEY is required when ENABLE_LEADERBOARD is set"))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "achievement_leaderboard")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEED_RANDOM_SEED", 0)
	v.SetDefault("SEED_ID_STRATEGY", "uuid")
	v.SetDefault("SEED_BATCH_SIZE", 500)
	v.SetDefault("SEED_DEFAULT_PASSWORD", "password123")
	v.SetDefault("SEED_BCRYPT_COST", 10)

	v.SetDefault("ENABLE_ROSTER_EXPORT", false)
	v.SetDefault("SEED_EXPORT_DIR", "./exports")
	v.SetDefault("ENABLE_LEADERBOARD", false)
	v.SetDefault("LEADERBOARD_KEY", "leaderboard:students")
	v.SetDefault("METRICS_PUSHGATEWAY_URL", "")
}
