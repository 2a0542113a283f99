package composer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pluqqy/cvbuilder/pkg/files"
	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

func TestComposeMarkdown(t *testing.T) {
	doc := templates.DefaultContent(models.TemplateClassic)
	doc.Identity.Name = "Jane Doe"
	doc.Identity.Title = "Engineer"

	output, err := ComposeMarkdown(&doc)
	if err != nil {
		t.Fatalf("ComposeMarkdown failed: %v", err)
	}

	// Verify output contains expected elements
	expectedElements := []string{
		"# Jane Doe",
		"**Engineer**",
		"your.email@example.com",
		"## Summary",
		"## Experience",
		"### Senior Software Engineer",
		"*Tech Company Inc. • San Francisco, CA | 2020 - Present*",
		"## Education",
		"## Skills",
		"- JavaScript/TypeScript (90%)",
	}
	for _, expected := range expectedElements {
		if !strings.Contains(output, expected) {
			t.Errorf("Output missing expected element: %s", expected)
		}
	}

	// Verify section order follows the template
	expPos := strings.Index(output, "## Experience")
	eduPos := strings.Index(output, "## Education")
	skillPos := strings.Index(output, "## Skills")
	if expPos > eduPos || eduPos > skillPos {
		t.Error("Sections not in template order")
	}

	// Two experience entries are separated, the single education entry is not
	if strings.Count(output, "---") != 1 {
		t.Errorf("Expected exactly one separator, got %d", strings.Count(output, "---"))
	}
}

func TestComposeMarkdownGroupedSkills(t *testing.T) {
	doc := templates.DefaultContent(models.TemplateElite)

	output, err := ComposeMarkdown(&doc)
	if err != nil {
		t.Fatalf("ComposeMarkdown failed: %v", err)
	}

	if !strings.Contains(output, "- **Technical Skills**: JavaScript/TypeScript, React & Node.js") {
		t.Errorf("Expected grouped technical skills, got:\n%s", output)
	}
	if !strings.Contains(output, "- **Soft Skills**: Leadership") {
		t.Error("Expected grouped soft skills")
	}
	if strings.Contains(output, "%)") {
		t.Error("Elite skills should not show levels")
	}
}

func TestComposeMarkdownSparseDocument(t *testing.T) {
	doc := models.NewDocument()

	output, err := ComposeMarkdown(doc)
	if err != nil {
		t.Fatalf("ComposeMarkdown failed: %v", err)
	}
	if !strings.HasPrefix(output, "# Unnamed") {
		t.Errorf("Expected placeholder heading, got %q", output)
	}
	for _, heading := range []string{"## Summary", "## Experience", "## Skills"} {
		if strings.Contains(output, heading) {
			t.Errorf("Empty sections should be skipped, found %s", heading)
		}
	}
}

func TestComposeMarkdownErrors(t *testing.T) {
	if _, err := ComposeMarkdown(nil); err == nil {
		t.Error("Expected error for nil document")
	}
}

func TestWriteMarkdownFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), files.DefaultProjectDir)
	files.SetProjectDir(dir)
	defer files.SetProjectDir("")

	content := "# Test CV"
	settings := models.DefaultSettings()

	// Test with default filename
	path, err := WriteMarkdownFile(content, settings, "")
	if err != nil {
		t.Fatalf("WriteMarkdownFile failed: %v", err)
	}
	if path != filepath.Join(dir, files.ExportsDir, "cv.md") {
		t.Errorf("Unexpected default path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(data) != content {
		t.Error("Output file content doesn't match")
	}

	// Test with custom filename
	customPath := filepath.Join(t.TempDir(), "custom", "cv.md")
	if _, err := WriteMarkdownFile(content, settings, customPath); err != nil {
		t.Fatalf("WriteMarkdownFile with custom path failed: %v", err)
	}
	if _, err := os.ReadFile(customPath); err != nil {
		t.Fatalf("Failed to read custom output file: %v", err)
	}
}
