package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/mahsadev/cinereq/models"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	TMDBAPIKey      string
	TMDBBaseURL     string
	DedupWindow     time.Duration
	IngestStrategy  string
	DefaultPageSize int
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("cinereq", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Catalog collaborator (prefer env for the key)
	fs.StringVar(&cfg.TMDBAPIKey, "tmdb-key", "", "TMDB API read token (prefer env)")
	fs.StringVar(&cfg.TMDBBaseURL, "tmdb-url", "", "TMDB API base URL")

	// Voting and listing behavior
	fs.DurationVar(&cfg.DedupWindow, "dedup-window", 0, "Session vote dedup window")
	fs.StringVar(&cfg.IngestStrategy, "ingest-strategy", "", "ingest-only or ingest-and-auto-vote")
	fs.IntVar(&cfg.DefaultPageSize, "page-size", 0, "Default page size for listings")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// Catalog key - MUST be provided
	if cfg.TMDBAPIKey == "" {
		cfg.TMDBAPIKey = os.Getenv("TMDB_API_KEY")
	}
	if cfg.TMDBAPIKey == "" {
		return Config{}, errors.New("TMDB_API_KEY required")
	}
	if cfg.TMDBBaseURL == "" {
		cfg.TMDBBaseURL = os.Getenv("TMDB_BASE_URL")
	}

	if cfg.DedupWindow == 0 {
		if windowStr := os.Getenv("DEDUP_WINDOW"); windowStr != "" {
			window, err := time.ParseDuration(windowStr)
			if err != nil {
				return Config{}, errors.New("invalid DEDUP_WINDOW env variable")
			}
			cfg.DedupWindow = window
		} else {
			cfg.DedupWindow = 24 * time.Hour
		}
	}
	if cfg.DedupWindow < 0 {
		return Config{}, errors.New("dedup window must be positive")
	}

	if cfg.IngestStrategy == "" {
		cfg.IngestStrategy = os.Getenv("INGEST_STRATEGY")
		if cfg.IngestStrategy == "" {
			cfg.IngestStrategy = models.StrategyIngestOnly
		}
	}
	if cfg.IngestStrategy != models.StrategyIngestOnly && cfg.IngestStrategy != models.StrategyIngestAutoVote {
		return Config{}, errors.New("ingest strategy must be ingest-only or ingest-and-auto-vote")
	}

	if cfg.DefaultPageSize == 0 {
		if sizeStr := os.Getenv("PAGE_SIZE"); sizeStr != "" {
			size, err := strconv.Atoi(sizeStr)
			if err != nil {
				return Config{}, errors.New("invalid PAGE_SIZE env variable")
			}
			cfg.DefaultPageSize = size
		} else {
			cfg.DefaultPageSize = 12
		}
	}
	if cfg.DefaultPageSize < 1 {
		return Config{}, errors.New("page size must be positive")
	}

	return cfg, nil
}
