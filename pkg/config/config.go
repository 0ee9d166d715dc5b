/*
Package config manages TOML config for assetserve.
*/
package config

import (
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/bastiangx/assetserve/internal/utils"
	"github.com/bastiangx/assetserve/pkg/rank"
	"github.com/bastiangx/assetserve/pkg/search"
	"github.com/charmbracelet/log"
)

const appName = "assetserve"

// Config holds the entire config structure
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Search  SearchConfig  `toml:"search"`
	Scoring ScoringConfig `toml:"scoring"`
	Catalog CatalogConfig `toml:"catalog"`
}

// ServerConfig has HTTP listener options.
type ServerConfig struct {
	Addr          string `toml:"addr"`
	Port          int    `toml:"port"`
	AllowOrigin   string `toml:"allow_origin"`
	ReadTimeoutMs int    `toml:"read_timeout_ms"`
}

// SearchConfig bounds the query pipeline.
type SearchConfig struct {
	ResultLimit    int `toml:"result_limit"`
	RecommendLimit int `toml:"recommend_limit"`
	RawMatchCap    int `toml:"raw_match_cap"`
	MaxQueryLen    int `toml:"max_query_len"`
	CacheSize      int `toml:"cache_size"`
}

// ScoringConfig holds the ranking formula constants.
type ScoringConfig struct {
	Preferences     []string `toml:"preferences"`
	PreferenceBoost float64  `toml:"preference_boost"`
	CapBoost        float64  `toml:"cap_boost"`
	CapThreshold    int64    `toml:"cap_threshold"`
	MaxScore        float64  `toml:"max_score"`
}

// CatalogConfig points at an optional catalog file. Empty means the
// built-in seed records.
type CatalogConfig struct {
	Path string `toml:"path"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	scoring := rank.DefaultOptions()
	limits := search.DefaultOptions()
	return &Config{
		Server: ServerConfig{
			Addr:          "127.0.0.1",
			Port:          8080,
			AllowOrigin:   "*",
			ReadTimeoutMs: 5000,
		},
		Search: SearchConfig{
			ResultLimit:    limits.ResultLimit,
			RecommendLimit: limits.RecommendLimit,
			RawMatchCap:    limits.RawMatchCap,
			MaxQueryLen:    limits.MaxQueryLen,
			CacheSize:      limits.CacheSize,
		},
		Scoring: ScoringConfig{
			Preferences:     scoring.Preferences,
			PreferenceBoost: scoring.PreferenceBoost,
			CapBoost:        scoring.CapBoost,
			CapThreshold:    scoring.CapThreshold,
			MaxScore:        scoring.MaxScore,
		},
	}
}

// RankOptions converts the scoring section for rank.NewScorer.
func (c *Config) RankOptions() rank.Options {
	prefs := make([]string, len(c.Scoring.Preferences))
	copy(prefs, c.Scoring.Preferences)
	return rank.Options{
		Preferences:     prefs,
		PreferenceBoost: c.Scoring.PreferenceBoost,
		CapBoost:        c.Scoring.CapBoost,
		CapThreshold:    c.Scoring.CapThreshold,
		MaxScore:        c.Scoring.MaxScore,
	}
}

// SearchOptions converts the search section for search.New.
func (c *Config) SearchOptions() search.Options {
	return search.Options{
		ResultLimit:    c.Search.ResultLimit,
		RecommendLimit: c.Search.RecommendLimit,
		RawMatchCap:    c.Search.RawMatchCap,
		MaxQueryLen:    c.Search.MaxQueryLen,
		CacheSize:      c.Search.CacheSize,
	}
}

// ReadTimeout is the HTTP read timeout as a duration.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutMs) * time.Millisecond
}

// GetConfigDir returns the config directory with fallback priority:
// 1. platform config dir (~/.config/assetserve, %APPDATA%\assetserve)
// 2. Current executable dir
func GetConfigDir() (string, error) {
	resolver, err := utils.NewPathResolver(appName)
	if err == nil {
		if result := utils.CheckDirStatus(resolver.ConfigDir()); result.Writable {
			return resolver.ConfigDir(), nil
		}
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
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/assetserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
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

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Sections that fail to decode fall back
// to their defaults while well-formed ones are kept.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config, err = tryPartialParse(configPath)
		if err != nil {
			return nil, err
		}
	}
	config.Validate()
	return config, nil
}

// Validate resets every out-of-range value to its default. The result and
// recommendation caps may be lowered but never raised, and scores stay
// within [0, 100].
func (c *Config) Validate() {
	def := DefaultConfig()

	checkInt("server.port", &c.Server.Port, def.Server.Port, 0, math.MaxUint16)
	checkInt("server.read_timeout_ms", &c.Server.ReadTimeoutMs, def.Server.ReadTimeoutMs, 0, math.MaxInt32)

	checkInt("search.result_limit", &c.Search.ResultLimit, def.Search.ResultLimit, 1, def.Search.ResultLimit)
	checkInt("search.recommend_limit", &c.Search.RecommendLimit, def.Search.RecommendLimit, 1, def.Search.RecommendLimit)
	checkInt("search.raw_match_cap", &c.Search.RawMatchCap, def.Search.RawMatchCap, 1, math.MaxInt32)
	checkInt("search.max_query_len", &c.Search.MaxQueryLen, def.Search.MaxQueryLen, 1, math.MaxInt32)
	checkInt("search.cache_size", &c.Search.CacheSize, def.Search.CacheSize, 0, math.MaxInt32)

	checkFloat("scoring.preference_boost", &c.Scoring.PreferenceBoost, def.Scoring.PreferenceBoost, 0, math.MaxFloat64)
	checkFloat("scoring.cap_boost", &c.Scoring.CapBoost, def.Scoring.CapBoost, 0, math.MaxFloat64)
	checkFloat("scoring.max_score", &c.Scoring.MaxScore, def.Scoring.MaxScore, 0, def.Scoring.MaxScore)
	if c.Scoring.CapThreshold < 0 {
		log.Warnf("scoring.cap_threshold = %d is negative. Using default %d", c.Scoring.CapThreshold, def.Scoring.CapThreshold)
		c.Scoring.CapThreshold = def.Scoring.CapThreshold
	}
}

func checkInt(key string, val *int, def, lo, hi int) {
	if *val < lo || *val > hi {
		log.Warnf("%s = %d is outside [%d, %d]. Using default %d", key, *val, lo, hi, def)
		*val = def
	}
}

func checkFloat(key string, val *float64, def, lo, hi float64) {
	if math.IsNaN(*val) || *val < lo || *val > hi {
		log.Warnf("%s = %v is outside [%v, %v]. Using default %v", key, *val, lo, hi, def)
		*val = def
	}
}

// tryPartialParse salvages whatever keys still have the expected types.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(tempConfig, "scoring"); ok {
		extractScoringConfig(section, &config.Scoring)
	}
	if section, ok := utils.ExtractSection(tempConfig, "catalog"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			config.Catalog.Path = val
		}
	}
	return config, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractString(data, "addr"); ok {
		server.Addr = val
	}
	if val, ok := utils.ExtractInt64(data, "port"); ok {
		server.Port = int(val)
	}
	if val, ok := utils.ExtractString(data, "allow_origin"); ok {
		server.AllowOrigin = val
	}
	if val, ok := utils.ExtractInt64(data, "read_timeout_ms"); ok {
		server.ReadTimeoutMs = int(val)
	}
}

func extractSearchConfig(data map[string]any, s *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "result_limit"); ok {
		s.ResultLimit = int(val)
	}
	if val, ok := utils.ExtractInt64(data, "recommend_limit"); ok {
		s.RecommendLimit = int(val)
	}
	if val, ok := utils.ExtractInt64(data, "raw_match_cap"); ok {
		s.RawMatchCap = int(val)
	}
	if val, ok := utils.ExtractInt64(data, "max_query_len"); ok {
		s.MaxQueryLen = int(val)
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		s.CacheSize = int(val)
	}
}

func extractScoringConfig(data map[string]any, s *ScoringConfig) {
	if val, ok := utils.ExtractStringSlice(data, "preferences"); ok {
		s.Preferences = val
	}
	if val, ok := utils.ExtractFloat64(data, "preference_boost"); ok {
		s.PreferenceBoost = val
	}
	if val, ok := utils.ExtractFloat64(data, "cap_boost"); ok {
		s.CapBoost = val
	}
	if val, ok := utils.ExtractInt64(data, "cap_threshold"); ok {
		s.CapThreshold = val
	}
	if val, ok := utils.ExtractFloat64(data, "max_score"); ok {
		s.MaxScore = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return err
	}
	return utils.SaveTOMLFile(DefaultConfig(), defaultPath)
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
