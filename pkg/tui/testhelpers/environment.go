package testhelpers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pluqqy/cvbuilder/pkg/files"
	"github.com/pluqqy/cvbuilder/pkg/models"
)

// TestEnvironment provides a temporary project directory for tests
type TestEnvironment struct {
	t          *testing.T
	TempDir    string
	ProjectDir string
	cleanup    []func()
}

// NewTestEnvironment points the project directory at a fresh temp dir.
// Cleanup runs automatically at the end of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tmpDir := t.TempDir()
	env := &TestEnvironment{
		t:          t,
		TempDir:    tmpDir,
		ProjectDir: filepath.Join(tmpDir, files.DefaultProjectDir),
	}

	files.SetProjectDir(env.ProjectDir)
	env.cleanup = append(env.cleanup, func() {
		files.SetProjectDir("")
	})
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup performs all cleanup operations
func (e *TestEnvironment) Cleanup() {
	for i := len(e.cleanup) - 1; i >= 0; i-- {
		e.cleanup[i]()
	}
	e.cleanup = nil
}

// InitProjectStructure creates the project folders and default settings
func (e *TestEnvironment) InitProjectStructure() {
	e.t.Helper()
	if err := files.InitProjectStructure(); err != nil {
		e.t.Fatalf("Failed to initialize project: %v", err)
	}
}

// WriteSettings stores settings in the project
func (e *TestEnvironment) WriteSettings(settings *models.Settings) {
	e.t.Helper()
	if err := files.WriteSettings(settings); err != nil {
		e.t.Fatalf("Failed to write settings: %v", err)
	}
}

// Store returns a file store on the project's default slot
func (e *TestEnvironment) Store() *files.FileStore {
	return files.NewFileStore(e.ProjectDir, files.DefaultSlot, 0)
}

// SaveDocument stores doc in the project's default slot
func (e *TestEnvironment) SaveDocument(doc *models.Document) {
	e.t.Helper()
	data, err := files.NewRecord(doc, "", time.Now()).Encode()
	if err != nil {
		e.t.Fatalf("Failed to encode document: %v", err)
	}
	if err := e.Store().Save(data); err != nil {
		e.t.Fatalf("Failed to save document: %v", err)
	}
}
