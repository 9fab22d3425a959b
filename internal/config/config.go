package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the countdown's construction-time settings.
type Config struct {
	Title       string
	Deadline    time.Time // zero when the configured value could not be parsed
	Image       string
	MountID     string
	StrictMount bool
	LogFile     string
}

const (
	defaultConfigPath = "~/.config/countdown/config.toml"
	defaultTitle      = "OLD IPHONE GIVEAWAY"
	defaultImage      = "/images/cell.png"
)

// DefaultMountID is the id of the container the page mounts into.
const DefaultMountID = "app"

// deadlineLayouts are tried in order; all but RFC 3339 are local wall-clock time.
var deadlineLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DefaultDeadline is midnight ten seconds past the 14th of October 2026, local time.
func DefaultDeadline() time.Time {
	return time.Date(2026, time.October, 14, 24, 0, 10, 0, time.Local)
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Title:       defaultTitle,
		Deadline:    DefaultDeadline(),
		Image:       defaultImage,
		MountID:     DefaultMountID,
		StrictMount: true,
	}
}

// Load locates and parses the countdown config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Title       string `toml:"title"`
		Deadline    string `toml:"deadline"`
		Image       string `toml:"image"`
		MountID     string `toml:"mount_id"`
		StrictMount *bool  `toml:"strict_mount"`
		LogFile     string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Title); v != "" {
		cfg.Title = v
	}
	if v := strings.TrimSpace(raw.Image); v != "" {
		cfg.Image = v
	}
	if v := strings.TrimSpace(raw.MountID); v != "" {
		cfg.MountID = v
	}
	if raw.StrictMount != nil {
		cfg.StrictMount = *raw.StrictMount
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Deadline); v != "" {
		deadline, err := ParseDeadline(v)
		if err != nil {
			log.Printf("config %s: %v; countdown will show as expired", resolved, err)
		}
		cfg.Deadline = deadline
	}

	return cfg, nil
}

// ParseDeadline parses a local wall-clock date-time or an RFC 3339 timestamp.
// It returns the zero time alongside the error when nothing matches.
func ParseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q", value)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
