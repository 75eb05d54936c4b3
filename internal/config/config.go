package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const DefaultPath = "config.toml"

type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Sheet  SheetConfig  `toml:"sheet"`
}

type ServerConfig struct {
	Addr        string  `toml:"addr"`
	AllowOrigin string  `toml:"allow_origin"`
	Rate        float64 `toml:"rate"`
	Burst       int     `toml:"burst"`
}

// SheetConfig controls rendered process sheets.
type SheetConfig struct {
	Company   string `toml:"company"`
	OutputDir string `toml:"output_dir"`
}

func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:        "127.0.0.1:8088",
			AllowOrigin: "http://127.0.0.1:8088",
			Rate:        5,
			Burst:       10,
		},
		Sheet: SheetConfig{
			Company:   "Yangtong Electric",
			OutputDir: "sheets",
		},
	}
}

// Load layers defaults, the TOML file at path, a .env file and the process environment.
// A missing config file or .env is not an error.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("ignoring .env: %v", err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("WIRECALC_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("WIRECALC_ALLOW_ORIGIN"); v != "" {
		cfg.Server.AllowOrigin = v
	}
	if v := os.Getenv("WIRECALC_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New("WIRECALC_RATE must be a number")
		}
		cfg.Server.Rate = rate
	}
	if v := os.Getenv("WIRECALC_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("WIRECALC_BURST must be an integer")
		}
		cfg.Server.Burst = burst
	}
	if v := os.Getenv("WIRECALC_COMPANY"); v != "" {
		cfg.Sheet.Company = v
	}
	if v := os.Getenv("WIRECALC_OUTPUT_DIR"); v != "" {
		cfg.Sheet.OutputDir = v
	}
	return nil
}

// EnsureOutputDir creates the directory terminal sessions write sheets into.
func EnsureOutputDir(cfg *AppConfig) (string, error) {
	if err := os.MkdirAll(cfg.Sheet.OutputDir, 0755); err != nil {
		return "", err
	}
	return cfg.Sheet.OutputDir, nil
}
