package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"
)

var (
	SNAPSWEEP_CONFIG_PATH string

	SNAPSWEEP_LOG_PATH string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")

	// Follow https://specifications.freedesktop.org/basedir-spec/latest/
	if SNAPSWEEP_CONFIG_PATH = os.Getenv("SNAPSWEEP_CONFIG_PATH"); SNAPSWEEP_CONFIG_PATH == "" {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			configDir = filepath.Join(homeDir, defaultXDGConfigDirname)
		}
		SNAPSWEEP_CONFIG_PATH = filepath.Join(configDir, "snapsweep", "config.yaml")
	}

	if SNAPSWEEP_LOG_PATH = os.Getenv("SNAPSWEEP_LOG_PATH"); SNAPSWEEP_LOG_PATH == "" {
		dataDir := os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			dataDir = filepath.Join(homeDir, defaultXDGDataDirname)
		}
		SNAPSWEEP_LOG_PATH = filepath.Join(dataDir, "snapsweep", "debug.log")
	}
}
