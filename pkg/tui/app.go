package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/composer"
	"github.com/pluqqy/cvbuilder/pkg/editor"
	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/progress"
	"github.com/pluqqy/cvbuilder/pkg/render"
	"github.com/pluqqy/cvbuilder/pkg/templates"
	"github.com/pluqqy/cvbuilder/pkg/utils"
)

// ControllerFactory builds the editor the App drives
type ControllerFactory interface {
	NewController(n editor.Notifier, c editor.Confirmer, s editor.Scheduler) (*editor.Controller, error)
}

type sessionState int

const (
	browseView sessionState = iota
	editFieldView
	colorView
	templatePickerView
)

// approvalConfirmer answers the controller's prompt with the user's answer
// from the confirmation dialog. Each approval is used once.
type approvalConfirmer struct {
	approved bool
}

func (a *approvalConfirmer) Confirm(editor.Prompt) bool {
	ok := a.approved
	a.approved = false
	return ok
}

type externalEditMsg struct {
	row  fieldRow
	path string
	err  error
}

// App is the interactive CV editor
type App struct {
	ctrl      *editor.Controller
	status    *StatusManager
	confirm   *ConfirmationModel
	approver  *approvalConfirmer
	scheduler *tickScheduler
	keys      KeyMap
	help      help.Model
	input     textinput.Model
	preview   viewport.Model
	launcher  *cli.EditorLauncher

	state          sessionState
	rows           []fieldRow
	cursor         int
	templateCursor int
	editing        fieldRow
	previewFocus   bool
	width          int
	height         int
	now            func() time.Time
}

// NewApp creates the editor on the given controller factory. The CV starts
// empty; pick a template or load the previous session.
func NewApp(factory ControllerFactory) (*App, error) {
	a := &App{
		status:    NewStatusManager(),
		confirm:   NewConfirmation(),
		approver:  &approvalConfirmer{},
		scheduler: newTickScheduler(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     textinput.New(),
		preview:   viewport.New(0, 0),
		state:     templatePickerView,
		now:       time.Now,
	}
	ctrl, err := factory.NewController(a.status, a.approver, a.scheduler)
	if err != nil {
		return nil, err
	}
	a.ctrl = ctrl
	a.ctrl.Init()
	a.launcher = cli.NewEditorLauncher(ctrl.Settings().Editor.Command)
	a.refresh()
	return a, nil
}

// Close stops auto-save
func (a *App) Close() {
	a.ctrl.Close()
}

// Controller exposes the editor for callers that embed the App
func (a *App) Controller() *editor.Controller {
	return a.ctrl
}

func (a *App) Init() tea.Cmd {
	return a.after(nil)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.refresh()
		return a, nil

	case ClearStatusMsg:
		a.status.HandleClear(msg)
		return a, nil

	case autosaveTickMsg:
		cmd := a.scheduler.Fire(msg)
		a.refresh()
		return a, a.after(cmd)

	case externalEditMsg:
		return a, a.finishExternalEdit(msg)

	case tea.KeyMsg:
		if a.confirm.Active() {
			cmd := a.confirm.Update(msg)
			return a, a.after(cmd)
		}
		switch a.state {
		case templatePickerView:
			return a, a.updatePicker(msg)
		case editFieldView, colorView:
			return a, a.updateInput(msg)
		default:
			return a, a.updateBrowse(msg)
		}
	}

	if a.previewFocus {
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return a, cmd
	}
	return a, nil
}

// execute applies an intent and surfaces errors the controller did not
// already report
func (a *App) execute(in editor.Intent) editor.Outcome {
	seq := a.status.seq
	outcome, err := a.ctrl.Execute(in)
	if err != nil && a.status.seq == seq {
		a.status.ShowError(err)
	}
	a.refresh()
	return outcome
}

// after batches cmd with pending status clears and auto-save ticks
func (a *App) after(cmd tea.Cmd) tea.Cmd {
	return tea.Batch(cmd, a.status.ClearCmd(), a.scheduler.Flush())
}

func (a *App) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	if a.previewFocus {
		switch {
		case key.Matches(msg, a.keys.Preview), msg.String() == "esc":
			a.previewFocus = false
			return nil
		case key.Matches(msg, a.keys.Quit):
			return a.quit()
		}
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.rows)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Edit):
		if row, ok := a.currentRow(); ok {
			a.editing = row
			a.state = editFieldView
			a.input.Prompt = row.Label + ": "
			a.input.SetValue(row.Value)
			a.input.CursorEnd()
			return a.input.Focus()
		}
	case key.Matches(msg, a.keys.External):
		if row, ok := a.currentRow(); ok {
			return a.startExternalEdit(row)
		}
	case key.Matches(msg, a.keys.Append):
		section := models.SectionExperience
		if row, ok := a.currentRow(); ok {
			section = row.Section
		}
		a.execute(editor.AppendEntry(section))
	case key.Matches(msg, a.keys.Template):
		a.openPicker()
	case key.Matches(msg, a.keys.Color):
		a.state = colorView
		a.input.Prompt = "Accent color: "
		a.input.SetValue(a.ctrl.Document().Presentation.AccentColor)
		a.input.CursorEnd()
		return a.input.Focus()
	case key.Matches(msg, a.keys.Bigger):
		a.execute(editor.ChangeFontSize(a.ctrl.Document().Presentation.FontSizePx + 1))
	case key.Matches(msg, a.keys.Smaller):
		a.execute(editor.ChangeFontSize(a.ctrl.Document().Presentation.FontSizePx - 1))
	case key.Matches(msg, a.keys.Save):
		a.execute(editor.Save())
	case key.Matches(msg, a.keys.Load):
		a.execute(editor.Load())
	case key.Matches(msg, a.keys.Reset):
		a.confirm.ShowPrompt(editor.ResetPrompt, "The saved CV is deleted.", func() tea.Cmd {
			a.approver.approved = true
			a.execute(editor.Reset())
			return nil
		})
	case key.Matches(msg, a.keys.Undo):
		a.execute(editor.Undo())
	case key.Matches(msg, a.keys.Redo):
		a.execute(editor.Redo())
	case key.Matches(msg, a.keys.Export):
		a.execute(editor.ExportPrintable(editor.ExportHTML, ""))
	case key.Matches(msg, a.keys.PDF):
		a.execute(editor.ExportPrintable(editor.ExportPDF, ""))
	case key.Matches(msg, a.keys.Copy):
		a.copyMarkdown()
	case key.Matches(msg, a.keys.Preview):
		a.previewFocus = true
	case msg.String() == "?":
		a.help.ShowAll = !a.help.ShowAll
	}
	return a.after(nil)
}

func (a *App) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		value := a.input.Value()
		state := a.state
		a.state = browseView
		a.input.Blur()
		if state == colorView {
			a.execute(editor.ChangeColor(value))
		} else {
			a.execute(a.editing.Intent(value))
		}
		return a.after(nil)
	case tea.KeyEsc:
		a.state = browseView
		a.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

func (a *App) openPicker() {
	a.state = templatePickerView
	a.templateCursor = 0
	for i, t := range templates.All() {
		if t.ID == a.ctrl.Document().Template {
			a.templateCursor = i
		}
	}
}

func (a *App) updatePicker(msg tea.KeyMsg) tea.Cmd {
	all := templates.All()
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.templateCursor > 0 {
			a.templateCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.templateCursor < len(all)-1 {
			a.templateCursor++
		}
	case key.Matches(msg, a.keys.Edit):
		id := all[a.templateCursor].ID
		if !a.ctrl.Document().Started {
			a.selectTemplate(id)
			break
		}
		if id == a.ctrl.Document().Template {
			a.state = browseView
			break
		}
		a.confirm.ShowPrompt(editor.TemplatePrompt, "Your name and contact details are kept.", func() tea.Cmd {
			a.approver.approved = true
			a.selectTemplate(id)
			return nil
		})
	case key.Matches(msg, a.keys.Load):
		if a.execute(editor.Load()) == editor.Applied {
			a.state = browseView
		}
	case msg.String() == "esc":
		if a.ctrl.Document().Started {
			a.state = browseView
		}
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	}
	return a.after(nil)
}

func (a *App) selectTemplate(id models.TemplateID) {
	if a.execute(editor.SelectTemplate(id)) == editor.Applied {
		a.state = browseView
		a.cursor = 0
	}
}

func (a *App) quit() tea.Cmd {
	if !a.ctrl.Dirty() {
		return tea.Quit
	}
	a.confirm.Show(ConfirmationConfig{
		Title:       "Unsaved changes",
		Message:     "Quit without saving?",
		Destructive: true,
		Type:        ConfirmTypeDialog,
	}, func() tea.Cmd { return tea.Quit }, nil)
	return nil
}

func (a *App) currentRow() (fieldRow, bool) {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return fieldRow{}, false
	}
	return a.rows[a.cursor], true
}

func (a *App) startExternalEdit(row fieldRow) tea.Cmd {
	f, err := os.CreateTemp("", "cvbuilder-*.md")
	if err != nil {
		a.status.ShowError(err)
		return a.after(nil)
	}
	path := f.Name()
	_, err = f.WriteString(row.Value)
	f.Close()
	if err != nil {
		os.Remove(path)
		a.status.ShowError(err)
		return a.after(nil)
	}
	return tea.ExecProcess(a.launcher.Command(path), func(err error) tea.Msg {
		return externalEditMsg{row: row, path: path, err: err}
	})
}

func (a *App) finishExternalEdit(msg externalEditMsg) tea.Cmd {
	defer os.Remove(msg.path)
	if msg.err != nil {
		a.status.ShowError(fmt.Errorf("editor failed: %w", msg.err))
		return a.after(nil)
	}
	content, err := os.ReadFile(msg.path)
	if err != nil {
		a.status.ShowError(err)
		return a.after(nil)
	}
	a.execute(msg.row.Intent(strings.TrimRight(string(content), "\n")))
	return a.after(nil)
}

func (a *App) copyMarkdown() {
	content, err := composer.ComposeMarkdown(a.ctrl.Document())
	if err == nil {
		err = clipboard.WriteAll(content)
	}
	if err != nil {
		a.status.ShowError(fmt.Errorf("failed to copy to clipboard: %w", err))
		return
	}
	a.status.Notify("CV copied to clipboard as Markdown", editor.SeveritySuccess, "Copied")
}

// refresh rebuilds the field list and preview from the document
func (a *App) refresh() {
	doc := a.ctrl.Document()

	current := ""
	if row, ok := a.currentRow(); ok {
		current = row.Key()
	}
	a.rows = buildRows(doc)
	for i, r := range a.rows {
		if r.Key() == current {
			a.cursor = i
		}
	}
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}

	_, previewWidth, bodyHeight := a.layout()
	a.preview.Width = previewWidth
	a.preview.Height = bodyHeight
	a.preview.SetContent(render.RenderText(doc, previewWidth-2))
}

// layout splits the screen between the field list and the preview
func (a *App) layout() (listWidth, previewWidth, bodyHeight int) {
	listWidth = a.width * 2 / 5
	previewWidth = a.width - listWidth - 4
	bodyHeight = a.height - 8
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	if previewWidth < 20 {
		previewWidth = 20
	}
	return listWidth, previewWidth, bodyHeight
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var body string
	if a.confirm.Active() {
		body = lipgloss.Place(a.width, a.height-4, lipgloss.Center, lipgloss.Center, a.confirm.View())
	} else if a.state == templatePickerView {
		body = a.pickerView()
	} else {
		body = a.editorView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.headerView(), body, a.footerView())
}

func (a *App) headerView() string {
	doc := a.ctrl.Document()
	if !doc.Started {
		return renderHeader(a.width, "New CV")
	}

	score := a.ctrl.Score()
	badges := []string{GetScoreBadgeStyle(score).Render(fmt.Sprintf("%d%% complete", score))}
	if md, err := composer.ComposeMarkdown(doc); err == nil {
		words := utils.CountWords(md)
		_, _, _, status := utils.GetLengthStatus(words)
		badges = append(badges, GetLengthBadgeStyle(status).Render(utils.FormatWordCount(words)))
	}
	saved := "Saved " + progress.LastSavedText(a.now(), a.ctrl.LastSaved())
	if a.ctrl.Dirty() {
		saved = DirtyStyle.Render("● ") + saved
	}
	badges = append(badges, DescriptionStyle.Render(" "+saved))

	return renderHeader(a.width, templates.Get(doc.Template).Name, badges...)
}

func (a *App) pickerView() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Choose a template"))
	b.WriteString("\n\n")
	for i, t := range templates.All() {
		line := fmt.Sprintf("%-12s %s", t.Name, DescriptionStyle.Render(t.Description))
		if i == a.templateCursor {
			b.WriteString(SelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	hint := "enter: use template • ctrl+o: load previous session"
	b.WriteString(PlaceholderStyle.Render(hint))
	return ActiveBorderStyle.Width(a.width - 2).Padding(1, 2).Render(b.String())
}

func (a *App) editorView() string {
	listWidth, _, bodyHeight := a.layout()

	var lines []string
	group := ""
	for i, r := range a.rows {
		if r.Group != group {
			group = r.Group
			lines = append(lines, SectionStyle.Render(group))
		}
		label := fmt.Sprintf("  %-12s", r.Label)
		value := preview(r.Value, listWidth-18)
		if value == "" {
			value = PlaceholderStyle.Render("empty")
		}
		line := label + " " + value
		if i == a.cursor {
			line = SelectedStyle.Render(line)
		} else {
			line = NormalStyle.Render(line)
		}
		lines = append(lines, line)
	}
	lines = scrollWindow(lines, a.cursorLine(), bodyHeight)

	listStyle, previewStyle := ActiveBorderStyle, InactiveBorderStyle
	if a.previewFocus {
		listStyle, previewStyle = InactiveBorderStyle, ActiveBorderStyle
	}
	list := listStyle.Width(listWidth).Height(bodyHeight).Render(strings.Join(lines, "\n"))
	pane := previewStyle.Height(bodyHeight).Render(a.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, list, pane)
}

// cursorLine is the cursor's line in the field list including group headings
func (a *App) cursorLine() int {
	line, group := 0, ""
	for i, r := range a.rows {
		if r.Group != group {
			group = r.Group
			line++
		}
		if i == a.cursor {
			return line
		}
		line++
	}
	return line
}

// scrollWindow returns the height lines around cursor
func scrollWindow(lines []string, cursor, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func (a *App) footerView() string {
	var parts []string
	if a.state == editFieldView || a.state == colorView {
		parts = append(parts, InputStyle.Width(a.width-4).Render(a.input.View()))
	}
	if text, severity, ok := a.status.GetStatus(); ok {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(ColorPrimary))
		switch severity {
		case editor.SeveritySuccess:
			style = style.Foreground(lipgloss.Color(ColorSuccess))
		case editor.SeverityWarning:
			style = style.Foreground(lipgloss.Color(ColorWarning))
		case editor.SeverityError:
			style = style.Foreground(lipgloss.Color(ColorDanger))
		}
		parts = append(parts, style.Render(text))
	}
	parts = append(parts, lipgloss.NewStyle().PaddingLeft(1).Render(a.help.View(a.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
