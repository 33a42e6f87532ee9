// Package config provides configuration management for Tomato.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/spf13/viper"
)

// Config holds all configuration for the Tomato application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	MCP           MCPConfig          `mapstructure:"mcp"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// TimerConfig holds per-mode countdown durations in whole minutes. Seconds
// set through the drag editor are transient and never persisted here.
type TimerConfig struct {
	FocusMinutes      int `mapstructure:"focus_minutes"`
	ShortBreakMinutes int `mapstructure:"short_break_minutes"`
	LongBreakMinutes  int `mapstructure:"long_break_minutes"`
}

// Durations returns the configured minutes keyed by mode.
func (c *TimerConfig) Durations() map[domain.Mode]int {
	return map[domain.Mode]int{
		domain.ModeFocus:      c.FocusMinutes,
		domain.ModeShortBreak: c.ShortBreakMinutes,
		domain.ModeLongBreak:  c.LongBreakMinutes,
	}
}

// SetDuration stores minutes for the given mode.
func (c *TimerConfig) SetDuration(mode domain.Mode, minutes int) {
	switch mode {
	case domain.ModeFocus:
		c.FocusMinutes = minutes
	case domain.ModeShortBreak:
		c.ShortBreakMinutes = minutes
	case domain.ModeLongBreak:
		c.LongBreakMinutes = minutes
	}
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// MCPConfig holds MCP server settings.
type MCPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorFocus       string `mapstructure:"color_focus"`
	ColorBreak       string `mapstructure:"color_break"`
	ColorPaused      string `mapstructure:"color_paused"`
	ColorTitle       string `mapstructure:"color_title"`
	ColorTask        string `mapstructure:"color_task"`
	ColorHelp        string `mapstructure:"color_help"`
	ColorAchievement string `mapstructure:"color_achievement"`
	IconApp          string `mapstructure:"icon_app"`
	IconTask         string `mapstructure:"icon_task"`
	IconStats        string `mapstructure:"icon_stats"`
	IconGit          string `mapstructure:"icon_git"`
	IconPaused       string `mapstructure:"icon_paused"`
	IconTrophy       string `mapstructure:"icon_trophy"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorFocus:       "#E74C3C",
		ColorBreak:       "#4ECDC4",
		ColorPaused:      "#6B7280",
		ColorTitle:       "#6B7280",
		ColorTask:        "#A0AEC0",
		ColorHelp:        "#95A5A6",
		ColorAchievement: "#F1C40F",
		IconApp:          "🍅",
		IconTask:         "📋",
		IconStats:        "📊",
		IconGit:          "🌿",
		IconPaused:       "⏸",
		IconTrophy:       "🏆",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			FocusMinutes:      domain.DefaultFocusMinutes,
			ShortBreakMinutes: domain.DefaultShortBreakMinutes,
			LongBreakMinutes:  domain.DefaultLongBreakMinutes,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		MCP: MCPConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DataDir: "~/.tomato",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.tomato" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".tomato")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("timer.focus_minutes", cfg.Timer.FocusMinutes)
	viper.Set("timer.short_break_minutes", cfg.Timer.ShortBreakMinutes)
	viper.Set("timer.long_break_minutes", cfg.Timer.LongBreakMinutes)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("mcp.enabled", cfg.MCP.Enabled)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_focus", cfg.Theme.ColorFocus)
	viper.Set("theme.color_break", cfg.Theme.ColorBreak)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_task", cfg.Theme.ColorTask)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.color_achievement", cfg.Theme.ColorAchievement)
	viper.Set("theme.icon_app", cfg.Theme.IconApp)
	viper.Set("theme.icon_task", cfg.Theme.IconTask)
	viper.Set("theme.icon_stats", cfg.Theme.IconStats)
	viper.Set("theme.icon_git", cfg.Theme.IconGit)
	viper.Set("theme.icon_paused", cfg.Theme.IconPaused)
	viper.Set("theme.icon_trophy", cfg.Theme.IconTrophy)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tomato", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "tomato.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("timer.focus_minutes", domain.DefaultFocusMinutes)
	viper.SetDefault("timer.short_break_minutes", domain.DefaultShortBreakMinutes)
	viper.SetDefault("timer.long_break_minutes", domain.DefaultLongBreakMinutes)
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("mcp.enabled", true)
	viper.SetDefault("storage.data_dir", "~/.tomato")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_focus", defaults.ColorFocus)
	viper.SetDefault("theme.color_break", defaults.ColorBreak)
	viper.SetDefault("theme.color_paused", defaults.ColorPaused)
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_task", defaults.ColorTask)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.color_achievement", defaults.ColorAchievement)
	viper.SetDefault("theme.icon_app", defaults.IconApp)
	viper.SetDefault("theme.icon_task", defaults.IconTask)
	viper.SetDefault("theme.icon_stats", defaults.IconStats)
	viper.SetDefault("theme.icon_git", defaults.IconGit)
	viper.SetDefault("theme.icon_paused", defaults.IconPaused)
	viper.SetDefault("theme.icon_trophy", defaults.IconTrophy)
}
