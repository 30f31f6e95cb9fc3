package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/emrpipe/internal/model"
)

// Config holds all runtime configuration for an emrload run.
type Config struct {
	DSN          string
	WorkbookPath string
	DataDir      string
	LogFormat    string // "text" or "json"
	LogFile      string
	ConfigFile   string
	Force        bool
	Entities     []string // subset of entity names to transform
}

// yamlConfig is the on-disk YAML structure. The file describes the
// dataset; run-level settings stay on flags.
type yamlConfig struct {
	Workbook string   `yaml:"workbook"`
	DataDir  string   `yaml:"data_dir"`
	Entities []string `yaml:"entities"`
}

// RawDir returns the directory raw per-sheet CSVs are written to.
func (c *Config) RawDir() string {
	return filepath.Join(c.dataDir(), "raw")
}

// StagedDir returns the directory staged entity CSVs are written to.
func (c *Config) StagedDir() string {
	return filepath.Join(c.dataDir(), "staged")
}

func (c *Config) dataDir() string {
	if c.DataDir == "" {
		return "data"
	}
	return c.DataDir
}

// LoadFromFile reads a YAML config file and merges its values into
// Config. Values already set by flags win.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.WorkbookPath == "" {
		c.WorkbookPath = yc.Workbook
	}
	if c.DataDir == "" {
		c.DataDir = yc.DataDir
	}
	if len(c.Entities) == 0 {
		c.Entities = yc.Entities
	}
	return c.ValidateEntities()
}

// ValidateEntities checks that every configured entity name is known.
// If Entities is empty, it defaults to all entity names in load order.
func (c *Config) ValidateEntities() error {
	if len(c.Entities) == 0 {
		c.Entities = model.EntityNames()
		return nil
	}
	for _, name := range c.Entities {
		if _, ok := model.EntityByName(name); !ok {
			return fmt.Errorf("unknown entity %q in config", name)
		}
	}
	return nil
}

// Validate checks that the workbook is set and readable.
func (c *Config) Validate() error {
	if c.WorkbookPath == "" {
		return fmt.Errorf("--workbook is required")
	}
	if _, err := os.Stat(c.WorkbookPath); err != nil {
		return fmt.Errorf("workbook not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks both workbook and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}
