package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/cvbuilder/pkg/models"
)

const (
	DefaultProjectDir = ".cvbuilder"
	ExportsDir        = "exports"
	SettingsFile      = "settings.yaml"
)

// ProjectDir is the directory holding settings, the saved CV and exports.
// It is relative to the working directory unless set to an absolute path.
var ProjectDir = DefaultProjectDir

// SetProjectDir overrides the project directory; empty restores the default
func SetProjectDir(dir string) {
	if dir == "" {
		dir = DefaultProjectDir
	}
	ProjectDir = dir
}

// ProjectExists reports whether the project directory has been initialized
func ProjectExists() bool {
	info, err := os.Stat(ProjectDir)
	return err == nil && info.IsDir()
}

func InitProjectStructure() error {
	dirs := []string{
		ProjectDir,
		filepath.Join(ProjectDir, ExportsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	settingsPath := filepath.Join(ProjectDir, SettingsFile)
	if _, err := os.Stat(settingsPath); errors.Is(err, os.ErrNotExist) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// ReadSettings loads settings.yaml, filling anything missing from defaults
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(ProjectDir, SettingsFile)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings stores settings.yaml
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	path := filepath.Join(ProjectDir, SettingsFile)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}

// ExportPath returns the path an export with the given extension is written to
func ExportPath(settings *models.Settings, ext string) string {
	name := settings.Export.Filename
	if name == "" {
		name = "cv"
	}
	dir := settings.Export.ExportPath
	if dir == "" || dir == "./" {
		dir = filepath.Join(ProjectDir, ExportsDir)
	}
	return filepath.Join(dir, name+ext)
}

// WriteFile writes content to a file, creating parent directories
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
