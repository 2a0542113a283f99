package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/cvbuilder/pkg/editor"
	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/tui/testhelpers"
)

type memoryFactory struct {
	store *testhelpers.MemoryStore
}

func (f memoryFactory) NewController(n editor.Notifier, c editor.Confirmer, s editor.Scheduler) (*editor.Controller, error) {
	return editor.New(editor.Deps{
		Settings:  models.DefaultSettings(),
		Store:     f.store,
		Notifier:  n,
		Confirmer: c,
		Scheduler: s,
	})
}

func newTestApp(t *testing.T) (*App, *testhelpers.MemoryStore) {
	t.Helper()
	store := testhelpers.NewMemoryStore()
	app, err := NewApp(memoryFactory{store: store})
	require.NoError(t, err)
	t.Cleanup(app.Close)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app, store
}

// startedApp returns an app with the first template chosen
func startedApp(t *testing.T) (*App, *testhelpers.MemoryStore) {
	t.Helper()
	app, store := newTestApp(t)
	press(app, "enter")
	require.True(t, app.Controller().Document().Started)
	return app, store
}

func press(app *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = app.Update(testhelpers.KeyPress(k))
	}
	return cmd
}

func editCurrent(t *testing.T, app *App, value string) {
	t.Helper()
	press(app, "enter")
	require.Equal(t, editFieldView, app.state)
	app.input.SetValue(value)
	press(app, "enter")
}

func TestAppStartsOnTemplatePicker(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, templatePickerView, app.state)
	view := app.View()
	testhelpers.AssertViewContains(t, view, "Choose a template")
	for _, name := range []string{"Classic", "Modern", "Minimalist", "Elite"} {
		testhelpers.AssertViewContains(t, view, name)
	}

	// escape does nothing before a template is chosen
	press(app, "esc")
	assert.Equal(t, templatePickerView, app.state)
}

func TestAppSelectTemplate(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "down", "enter")

	doc := app.Controller().Document()
	assert.Equal(t, models.TemplateModern, doc.Template)
	assert.Equal(t, browseView, app.state)
	assert.NotEmpty(t, app.rows)

	view := app.View()
	testhelpers.AssertViewContains(t, view, "Modern")
	testhelpers.AssertViewContains(t, view, "Contact")
}

func TestAppEditField(t *testing.T) {
	app, _ := startedApp(t)
	require.Equal(t, "name", app.rows[0].Key())

	editCurrent(t, app, "Jane Doe")

	assert.Equal(t, "Jane Doe", app.Controller().Document().Identity.Name)
	assert.Equal(t, browseView, app.state)
	assert.True(t, app.Controller().Dirty())
	testhelpers.AssertViewContains(t, app.View(), "Jane Doe")
}

func TestAppEditCancelled(t *testing.T) {
	app, _ := startedApp(t)
	before := app.Controller().Document().Identity.Name

	press(app, "enter")
	app.input.SetValue("Ignored")
	press(app, "esc")

	assert.Equal(t, browseView, app.state)
	assert.Equal(t, before, app.Controller().Document().Identity.Name)
}

func TestAppUndoRedo(t *testing.T) {
	app, _ := startedApp(t)
	before := app.Controller().Document().Clone()

	editCurrent(t, app, "Jane Doe")
	press(app, "ctrl+z")
	testhelpers.AssertStateEqual(t, before, app.Controller().Document())

	press(app, "ctrl+y")
	assert.Equal(t, "Jane Doe", app.Controller().Document().Identity.Name)
}

func TestAppSaveAndFontSize(t *testing.T) {
	app, store := startedApp(t)
	size := app.Controller().Document().Presentation.FontSizePx

	press(app, "+")
	assert.Equal(t, size+1, app.Controller().Document().Presentation.FontSizePx)
	press(app, "-", "-")
	assert.Equal(t, size-1, app.Controller().Document().Presentation.FontSizePx)

	press(app, "ctrl+s")
	assert.Equal(t, 1, store.Saves)
	assert.False(t, app.Controller().Dirty())

	text, severity, ok := app.status.GetStatus()
	require.True(t, ok)
	assert.Equal(t, editor.SeveritySuccess, severity)
	assert.Contains(t, text, "CV saved successfully!")
}

func TestAppChangeColor(t *testing.T) {
	app, _ := startedApp(t)

	press(app, "c")
	require.Equal(t, colorView, app.state)
	app.input.SetValue("0d9488")
	press(app, "enter")
	assert.Equal(t, "#0d9488", app.Controller().Document().Presentation.AccentColor)

	press(app, "c")
	app.input.SetValue("teal")
	press(app, "enter")
	assert.Equal(t, "#0d9488", app.Controller().Document().Presentation.AccentColor)
	_, severity, ok := app.status.GetStatus()
	require.True(t, ok)
	assert.Equal(t, editor.SeverityError, severity)
}

func TestAppAppendEntry(t *testing.T) {
	app, _ := startedApp(t)
	entries := len(app.Controller().Document().Experience)

	press(app, "a")

	assert.Len(t, app.Controller().Document().Experience, entries+1)
}

func TestAppResetAsksFirst(t *testing.T) {
	app, store := startedApp(t)
	editCurrent(t, app, "Jane Doe")
	press(app, "ctrl+s")
	require.True(t, store.Exists())

	press(app, "ctrl+r")
	require.True(t, app.confirm.Active())
	testhelpers.AssertViewContains(t, app.View(), editor.ResetPrompt.Title)

	press(app, "n")
	assert.False(t, app.confirm.Active())
	assert.Equal(t, "Jane Doe", app.Controller().Document().Identity.Name)
	assert.True(t, store.Exists())

	press(app, "ctrl+r", "y")
	assert.NotEqual(t, "Jane Doe", app.Controller().Document().Identity.Name)
	assert.False(t, store.Exists())
}

func TestAppTemplateSwitchKeepsIdentity(t *testing.T) {
	app, _ := startedApp(t)
	editCurrent(t, app, "Jane Doe")

	press(app, "t")
	require.Equal(t, templatePickerView, app.state)
	press(app, "down", "down", "down", "enter")
	require.True(t, app.confirm.Active())

	press(app, "n")
	assert.Equal(t, models.TemplateClassic, app.Controller().Document().Template)

	press(app, "enter", "y")
	doc := app.Controller().Document()
	assert.Equal(t, models.TemplateElite, doc.Template)
	assert.Equal(t, "Jane Doe", doc.Identity.Name)
	assert.Equal(t, browseView, app.state)
}

func TestAppLoadPreviousSession(t *testing.T) {
	app, store := startedApp(t)
	editCurrent(t, app, "Jane Doe")
	press(app, "ctrl+s")

	restored, err := NewApp(memoryFactory{store: store})
	require.NoError(t, err)
	defer restored.Close()

	text, _, ok := restored.status.GetStatus()
	require.True(t, ok)
	assert.Contains(t, text, "Previous session found")

	press(restored, "ctrl+o")
	assert.Equal(t, browseView, restored.state)
	assert.Equal(t, "Jane Doe", restored.Controller().Document().Identity.Name)
}

func TestAppAutosaveTick(t *testing.T) {
	app, store := startedApp(t)
	require.Equal(t, 1, app.scheduler.Active())

	var id int
	for k := range app.scheduler.tasks {
		id = k
	}

	app.Update(autosaveTickMsg{id: id})
	assert.Equal(t, 1, store.Saves, "a fresh template is unsaved")

	app.Update(autosaveTickMsg{id: id})
	assert.Equal(t, 1, store.Saves, "nothing changed since the last save")

	editCurrent(t, app, "Jane Doe")
	app.Update(autosaveTickMsg{id: id})
	assert.Equal(t, 2, store.Saves)
}

func TestAppQuit(t *testing.T) {
	app, _ := newTestApp(t)

	cmd := press(app, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppQuitWithUnsavedChanges(t *testing.T) {
	app, _ := startedApp(t)
	editCurrent(t, app, "Jane Doe")

	cmd := press(app, "q")
	assert.Nil(t, cmd)
	require.True(t, app.confirm.Active())
	testhelpers.AssertViewContains(t, app.View(), "Quit without saving?")

	cmd = press(app, "y")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppPreviewFocus(t *testing.T) {
	app, _ := startedApp(t)

	press(app, "tab")
	assert.True(t, app.previewFocus)

	// field keys scroll the preview instead of editing
	press(app, "enter")
	assert.Equal(t, browseView, app.state)

	press(app, "tab")
	assert.False(t, app.previewFocus)
}

func TestStatusClearKeepsNewerMessage(t *testing.T) {
	sm := NewStatusManager()
	sm.Notify("first", editor.SeverityInfo, "One")
	require.NotNil(t, sm.ClearCmd())
	sm.Notify("second", editor.SeverityInfo, "Two")

	sm.HandleClear(ClearStatusMsg{seq: 1})
	text, _, ok := sm.GetStatus()
	require.True(t, ok)
	assert.Contains(t, text, "second")

	sm.HandleClear(ClearStatusMsg{seq: 2})
	_, _, ok = sm.GetStatus()
	assert.False(t, ok)
}

func TestConfirmationPrompt(t *testing.T) {
	m := NewConfirmation()
	confirmed := false
	m.ShowPrompt(editor.TemplatePrompt, "Your name and contact details are kept.", func() tea.Cmd {
		confirmed = true
		return nil
	})

	view := m.View()
	assert.Contains(t, view, editor.TemplatePrompt.Title)
	assert.Contains(t, view, "Your name and contact details are kept.")

	m.Update(testhelpers.KeyPress("x"))
	assert.True(t, m.Active(), "other keys are swallowed")

	m.Update(testhelpers.KeyPress("y"))
	assert.True(t, confirmed)
	assert.False(t, m.Active())
}

func TestTickSchedulerStop(t *testing.T) {
	s := newTickScheduler()
	runs := 0
	task := s.Every(0, func() { runs++ })
	assert.NotNil(t, s.Flush())
	assert.Nil(t, s.Flush())

	s.Fire(autosaveTickMsg{id: 1})
	assert.Equal(t, 1, runs)

	task.Stop()
	assert.Nil(t, s.Fire(autosaveTickMsg{id: 1}))
	assert.Equal(t, 1, runs)
	assert.Equal(t, 0, s.Active())
}
