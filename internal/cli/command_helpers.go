package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pluqqy/cvbuilder/pkg/editor"
	"github.com/pluqqy/cvbuilder/pkg/files"
	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/render"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() (*CommandContext, error) {
	return &CommandContext{
		ProjectPath: files.ProjectDir,
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'cvbuilder init' first", c.ProjectPath)
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		// Use default settings if can't read
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// Store returns the file store holding the saved CV
func (c *CommandContext) Store() *files.FileStore {
	settings := c.LoadSettingsWithDefault()
	return files.NewFileStore(c.ProjectPath, settings.Storage.Slot, settings.Storage.MaxBytes)
}

// NewController wires an editor against the project store. Printing goes
// through headless Chrome.
func (c *CommandContext) NewController(n editor.Notifier, conf editor.Confirmer, s editor.Scheduler) (*editor.Controller, error) {
	settings := c.LoadSettingsWithDefault()
	return editor.New(editor.Deps{
		Settings:  settings,
		Store:     c.Store(),
		Notifier:  n,
		Confirmer: conf,
		Printer:   render.NewPDFPrinter(settings.Export.ChromePath),
		Scheduler: s,
	})
}

// OpenEditor returns a controller holding the saved CV, or a fresh one on
// the default template when nothing is saved. Messages raised while
// restoring are not printed.
func (c *CommandContext) OpenEditor() (*editor.Controller, error) {
	n := &mutableNotifier{next: Notifier(), muted: true}
	ctrl, err := c.NewController(n, Confirmer(), nil)
	if err != nil {
		return nil, err
	}
	ctrl.Init()

	if c.Store().Exists() {
		if _, err := ctrl.Execute(editor.Load()); err != nil {
			return nil, fmt.Errorf("failed to load saved CV: %w", err)
		}
	} else {
		id := models.ParseTemplateID(c.LoadSettingsWithDefault().Editor.DefaultTemplate)
		if _, err := ctrl.Execute(editor.SelectTemplate(id)); err != nil {
			return nil, err
		}
	}

	n.muted = false
	return ctrl, nil
}

// SaveEditor persists the controller's document
func SaveEditor(ctrl *editor.Controller) error {
	if _, err := ctrl.Execute(editor.Save()); err != nil {
		return fmt.Errorf("failed to save CV: %w", err)
	}
	return nil
}

type mutableNotifier struct {
	next  editor.Notifier
	muted bool
}

func (m *mutableNotifier) Notify(message string, severity editor.Severity, title string) {
	if !m.muted {
		m.next.Notify(message, severity, title)
	}
}

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher. command overrides $EDITOR.
func NewEditorLauncher(command string) *EditorLauncher {
	name := command
	if name == "" {
		name = os.Getenv("EDITOR")
	}
	if name == "" {
		name = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: name,
	}
}

// Command builds the editor invocation for a file
func (e *EditorLauncher) Command(filepath string) *exec.Cmd {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) > 1 {
		return exec.Command(parts[0], append(parts[1:], filepath)...)
	}
	return exec.Command(e.DefaultEditor, filepath)
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(filepath string) error {
	editorCmd := e.Command(filepath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}

// OpenTempFile creates a temp file with content and opens it
func (e *EditorLauncher) OpenTempFile(name, content string) (string, error) {
	tmpFile, err := os.CreateTemp("", name)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tmpFile.Close()

	if content != "" {
		if _, err := tmpFile.WriteString(content); err != nil {
			os.Remove(tmpFile.Name())
			return "", fmt.Errorf("failed to write to temp file: %w", err)
		}
	}

	if err := e.OpenFile(tmpFile.Name()); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}

	return tmpFile.Name(), nil
}

// EditText lets the user edit text in the external editor and returns the
// result without its trailing newline
func (e *EditorLauncher) EditText(content string) (string, error) {
	path, err := e.OpenTempFile("cvbuilder-*.md", content)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited text: %w", err)
	}
	return strings.TrimRight(string(edited), "\n"), nil
}
