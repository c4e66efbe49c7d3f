package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// Config holds user-tunable settings. Thresholds are configuration on
// purpose: the similarity metric is approximate and users calibrate it.
type Config struct {
	AcceptThreshold    float64 `json:"accept_threshold"`     // Minimum confidence to execute a match (0.0-1.0)
	SuggestThreshold   float64 `json:"suggest_threshold"`    // Minimum confidence to offer a suggestion (0.0-1.0)
	MaxSuggestions     int     `json:"max_suggestions"`      // Maximum "did you mean" candidates
	PassthroughEnabled bool    `json:"passthrough_enabled"`  // Execute literal shell commands directly
	HistoryEnabled     bool    `json:"history_enabled"`      // Persist prompt history between sessions
	HistoryLimit       int     `json:"history_limit"`        // Maximum stored history lines
	PhrasePacksEnabled bool    `json:"phrase_packs_enabled"` // Load extra phrasings from the phrases directory
	PhrasePackBaseURL  string  `json:"phrase_pack_base_url"` // Base URL for downloading phrase packs
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		AcceptThreshold:    0.72,
		SuggestThreshold:   0.50,
		MaxSuggestions:     3,
		PassthroughEnabled: true,
		HistoryEnabled:     true,
		HistoryLimit:       500,
		PhrasePacksEnabled: true,
		PhrasePackBaseURL:  "https://raw.githubusercontent.com/zyntax-cli/phrase-packs/main",
	}
}

// ConfigManager loads and persists the JSON configuration under the
// config directory, with ZYNTAX_* environment overrides applied on top.
type ConfigManager struct {
	configDir  string
	configPath string
	mutex      sync.RWMutex
	config     Config
}

// NewConfigManager creates a manager rooted at dir, defaulting to
// ~/.config/zyntax.
func NewConfigManager(dir string) (*ConfigManager, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv("HOME")
		}
		dir = filepath.Join(homeDir, ".config", "zyntax")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %v", err)
	}

	return &ConfigManager{
		configDir:  dir,
		configPath: filepath.Join(dir, "config.json"),
		config:     DefaultConfig(),
	}, nil
}

// Initialize loads the existing configuration, writing the defaults on
// first run, then applies environment overrides.
func (cm *ConfigManager) Initialize() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if err := cm.loadConfig(); err != nil {
		if err := cm.saveConfig(); err != nil {
			return fmt.Errorf("failed to save default configuration: %v", err)
		}
	}
	cm.applyEnvOverrides()
	return nil
}

// Config returns a copy of the current settings.
func (cm *ConfigManager) Config() Config {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()
	return cm.config
}

// UpdateConfig replaces the settings and persists them.
func (cm *ConfigManager) UpdateConfig(config Config) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	cm.config = config
	return cm.saveConfig()
}

// ConfigDir returns the root config directory.
func (cm *ConfigManager) ConfigDir() string {
	return cm.configDir
}

// HistoryPath returns the SQLite history database location.
func (cm *ConfigManager) HistoryPath() string {
	return filepath.Join(cm.configDir, "history.db")
}

// PhrasePackDir returns the directory scanned for phrase packs.
func (cm *ConfigManager) PhrasePackDir() string {
	return filepath.Join(cm.configDir, "phrases")
}

func (cm *ConfigManager) loadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return err
	}
	cm.config = config
	return nil
}

func (cm *ConfigManager) saveConfig() error {
	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cm.configPath, data, 0644)
}

// applyEnvOverrides layers ZYNTAX_* environment variables over the
// file-based settings. Unparsable values are ignored.
func (cm *ConfigManager) applyEnvOverrides() {
	if v := os.Getenv("ZYNTAX_ACCEPT_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cm.config.AcceptThreshold = f
		}
	}
	if v := os.Getenv("ZYNTAX_SUGGEST_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cm.config.SuggestThreshold = f
		}
	}
	if v := os.Getenv("ZYNTAX_MAX_SUGGESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cm.config.MaxSuggestions = n
		}
	}
	if v := os.Getenv("ZYNTAX_PASSTHROUGH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cm.config.PassthroughEnabled = b
		}
	}
	if v := os.Getenv("ZYNTAX_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cm.config.HistoryEnabled = b
		}
	}
	if v := os.Getenv("ZYNTAX_PHRASE_PACK_URL"); v != "" {
		cm.config.PhrasePackBaseURL = v
	}
}
