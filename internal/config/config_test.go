package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeConfig(t, "workbook: data/source/emr.xlsx\ndata_dir: data\nentities:\n  - patients\n  - visits\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.WorkbookPath != "data/source/emr.xlsx" {
		t.Errorf("WorkbookPath = %q", c.WorkbookPath)
	}
	if len(c.Entities) != 2 || c.Entities[0] != "patients" || c.Entities[1] != "visits" {
		t.Errorf("unexpected entities: %v", c.Entities)
	}
}

func TestLoadFromFile_FlagsWin(t *testing.T) {
	path := writeConfig(t, "workbook: from-file.xlsx\ndata_dir: file-data\n")

	c := Config{WorkbookPath: "from-flag.xlsx"}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.WorkbookPath != "from-flag.xlsx" {
		t.Errorf("flag value should win, got %q", c.WorkbookPath)
	}
	if c.DataDir != "file-data" {
		t.Errorf("unset field should take file value, got %q", c.DataDir)
	}
}

func TestLoadFromFile_UnknownEntity(t *testing.T) {
	path := writeConfig(t, "entities:\n  - patients\n  - appointments\n")

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown entity name")
	}
}

func TestValidateEntities_EmptyDefaultsToAll(t *testing.T) {
	var c Config
	if err := c.ValidateEntities(); err != nil {
		t.Fatalf("ValidateEntities: %v", err)
	}
	if len(c.Entities) != 4 {
		t.Errorf("expected 4 default entities, got %d: %v", len(c.Entities), c.Entities)
	}
	if c.Entities[0] != "icd_reference" || c.Entities[3] != "lab_results" {
		t.Errorf("entities not in load order: %v", c.Entities)
	}
}

func TestDataDirs(t *testing.T) {
	var c Config
	if got := c.RawDir(); got != filepath.Join("data", "raw") {
		t.Errorf("default RawDir = %q", got)
	}

	c.DataDir = "/tmp/emr"
	if got := c.StagedDir(); got != filepath.Join("/tmp/emr", "staged") {
		t.Errorf("StagedDir = %q", got)
	}
}

func TestValidate(t *testing.T) {
	t.Run("missing_workbook_flag", func(t *testing.T) {
		var c Config
		if err := c.Validate(); err == nil {
			t.Fatal("expected error for unset workbook")
		}
	})

	t.Run("workbook_not_on_disk", func(t *testing.T) {
		c := Config{WorkbookPath: filepath.Join(t.TempDir(), "absent.xlsx")}
		if err := c.Validate(); err == nil {
			t.Fatal("expected error for missing workbook file")
		}
	})

	t.Run("dsn_required", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wb.xlsx")
		os.WriteFile(path, []byte("stub"), 0644)

		c := Config{WorkbookPath: path}
		if err := c.Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if err := c.ValidateWithDSN(); err == nil {
			t.Fatal("expected error for unset DSN")
		}
		c.DSN = "postgresql://localhost/emr"
		if err := c.ValidateWithDSN(); err != nil {
			t.Fatalf("ValidateWithDSN: %v", err)
		}
	})
}
