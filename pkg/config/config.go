/*
Package config manages TOML config for wordsolve.
*/
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// AppName names the config dir and env prefix.
const AppName = "wordsolve"

// Environment variables that override file paths from the config file.
const (
	EnvWords  = "WORDSOLVE_WORDS"
	EnvFreq   = "WORDSOLVE_FREQ"
	EnvCorpus = "WORDSOLVE_CORPUS"
)

// Config holds the entire config structure
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// SolverConfig bounds the ranking work per round.
type SolverConfig struct {
	MaxEvalGuesses int `toml:"max_eval_guesses"`
	FullEvalLimit  int `toml:"full_eval_limit"`
	MaxSteps       int `toml:"max_steps"`
	CacheSize      int `toml:"cache_size"`
}

// DictConfig holds word list and frequency file options.
type DictConfig struct {
	WordsPath      string  `toml:"words_path"`
	FreqPath       string  `toml:"frequency_path"`
	CorpusPath     string  `toml:"corpus_path"`
	DefaultScore   float64 `toml:"default_score"`
	AutoRegenerate bool    `toml:"auto_regenerate"`
	Workers        int     `toml:"workers"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	Color        bool `toml:"color"`
	ShowWords    int  `toml:"show_words"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", AppName)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", AppName)
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/wordsolve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			MaxEvalGuesses: 900,
			FullEvalLimit:  1500,
			MaxSteps:       6,
			CacheSize:      32,
		},
		Dict: DictConfig{
			WordsPath:      filepath.Join("data", "words.txt"),
			FreqPath:       filepath.Join("data", "words_frequency.txt"),
			CorpusPath:     "",
			DefaultScore:   0,
			AutoRegenerate: true,
			Workers:        4,
		},
		CLI: CliConfig{
			DefaultLimit: 10,
			Color:        true,
			ShowWords:    20,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every section that still parses and defaults the rest
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "solver"); ok {
		extractSolverConfig(section, &config.Solver)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractSolverConfig(data map[string]any, solver *SolverConfig) {
	if val, ok := utils.ExtractInt64(data, "max_eval_guesses"); ok {
		solver.MaxEvalGuesses = val
	}
	if val, ok := utils.ExtractInt64(data, "full_eval_limit"); ok {
		solver.FullEvalLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_steps"); ok {
		solver.MaxSteps = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		solver.CacheSize = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "words_path"); ok {
		dict.WordsPath = val
	}
	if val, ok := utils.ExtractString(data, "frequency_path"); ok {
		dict.FreqPath = val
	}
	if val, ok := utils.ExtractString(data, "corpus_path"); ok {
		dict.CorpusPath = val
	}
	if val, ok := utils.ExtractFloat(data, "default_score"); ok {
		dict.DefaultScore = val
	}
	if val, ok := utils.ExtractBool(data, "auto_regenerate"); ok {
		dict.AutoRegenerate = val
	}
	if val, ok := utils.ExtractInt64(data, "workers"); ok {
		dict.Workers = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "color"); ok {
		cli.Color = val
	}
	if val, ok := utils.ExtractInt64(data, "show_words"); ok {
		cli.ShowWords = val
	}
}

// ApplyEnv loads envFile (if present) into the environment and lets the
// WORDSOLVE_* variables override file paths. Variables already set in the
// process environment win over the file.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if v := os.Getenv(EnvWords); v != "" {
		c.Dict.WordsPath = v
	}
	if v := os.Getenv(EnvFreq); v != "" {
		c.Dict.FreqPath = v
	}
	if v := os.Getenv(EnvCorpus); v != "" {
		c.Dict.CorpusPath = v
	}
	return nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}
