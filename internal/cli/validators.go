package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

// ValidateTemplate validates a template name without falling back to the default
func ValidateTemplate(name string) error {
	if models.IsKnownTemplate(name) {
		return nil
	}
	names := make([]string, 0, len(templates.List()))
	for _, id := range templates.List() {
		names = append(names, string(id))
	}
	return fmt.Errorf("invalid template: %s (must be: %s)", name, strings.Join(names, ", "))
}

// ValidateSection validates a repeatable section name
func ValidateSection(name string) (models.Section, error) {
	return models.ParseSection(name)
}

// ValidateIdentityField validates a contact field name
func ValidateIdentityField(field string) error {
	if slices.Contains(models.IdentityFields, strings.ToLower(field)) {
		return nil
	}
	return fmt.Errorf("invalid field: %s (must be: %s)", field, strings.Join(models.IdentityFields, ", "))
}

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if slices.Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}
