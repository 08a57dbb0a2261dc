/*
Package config manages TOML config for WordFourth services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordfourth/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Corpus CorpusConfig `toml:"corpus"`
	Query  QueryConfig  `toml:"query"`
	CLI    CliConfig    `toml:"cli"`
}

// CorpusConfig holds corpus loading options.
type CorpusConfig struct {
	Path      string `toml:"path"`
	MaxTokens int    `toml:"max_tokens"`
}

// QueryConfig has candidate query related options.
type QueryConfig struct {
	MaxCandidates int  `toml:"max_candidates"`
	CacheSize     int  `toml:"cache_size"`
	EnableCache   bool `toml:"enable_cache"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit    int  `toml:"default_limit"`
	DefaultNoFilter bool `toml:"default_no_filter"`
	SuggestLimit    int  `toml:"suggest_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordfourth")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "wordfourth")
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

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Path:      "corpus.txt",
			MaxTokens: 0,
		},
		Query: QueryConfig{
			MaxCandidates: 64,
			CacheSize:     4096,
			EnableCache:   true,
		},
		CLI: CliConfig{
			DefaultLimit:    24,
			DefaultNoFilter: false,
			SuggestLimit:    8,
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

// tryPartialParse salvages individually valid sections from a broken file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if corpusSection, ok := utils.ExtractSection(tempConfig, "corpus"); ok {
		extractCorpusConfig(corpusSection, &config.Corpus)
	}
	if querySection, ok := utils.ExtractSection(tempConfig, "query"); ok {
		extractQueryConfig(querySection, &config.Query)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractCorpusConfig extracts corpus configuration from a map
func extractCorpusConfig(data map[string]any, corpus *CorpusConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		corpus.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "max_tokens"); ok {
		corpus.MaxTokens = val
	}
}

// extractQueryConfig extracts query configuration from a map
func extractQueryConfig(data map[string]any, query *QueryConfig) {
	if val, ok := utils.ExtractInt64(data, "max_candidates"); ok {
		query.MaxCandidates = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		query.CacheSize = val
	}
	if val, ok := utils.ExtractBool(data, "enable_cache"); ok {
		query.EnableCache = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "default_no_filter"); ok {
		cli.DefaultNoFilter = val
	}
	if val, ok := utils.ExtractInt64(data, "suggest_limit"); ok {
		cli.SuggestLimit = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes query config values and saves to file
func (c *Config) Update(configPath string, maxCandidates, cacheSize *int, enableCache *bool) error {
	query := &c.Query
	if maxCandidates != nil {
		query.MaxCandidates = *maxCandidates
	}
	if cacheSize != nil {
		query.CacheSize = *cacheSize
	}
	if enableCache != nil {
		query.EnableCache = *enableCache
	}
	return SaveConfig(c, configPath)
}
