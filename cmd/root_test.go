package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/spendview/internal/config"
)

func TestDataPathPrecedence(t *testing.T) {
	t.Setenv(config.DataEnvVar, "")
	cfg := config.DefaultConfig()
	cfg.General.DataFile = "/from/config.json"

	flagDataFile = ""
	if got := dataPath(cfg); got != "/from/config.json" {
		t.Errorf("config path = %q", got)
	}

	t.Setenv(config.DataEnvVar, "/from/env.json")
	if got := dataPath(cfg); got != "/from/env.json" {
		t.Errorf("env path = %q", got)
	}

	flagDataFile = "/from/flag.json"
	t.Cleanup(func() { flagDataFile = "" })
	if got := dataPath(cfg); got != "/from/flag.json" {
		t.Errorf("flag path = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/x.json"); got != filepath.Join(home, "x.json") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/abs/x.json"); got != "/abs/x.json" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := expandHome(""); got != "" {
		t.Errorf("empty path changed: %q", got)
	}
}

func TestFillGaps(t *testing.T) {
	cfg := config.DefaultConfig()
	flagFillGaps = false
	if fillGaps(cfg) {
		t.Error("gaps filled by default")
	}
	cfg.Chart.FillMissingDays = true
	if !fillGaps(cfg) {
		t.Error("config setting ignored")
	}
}
