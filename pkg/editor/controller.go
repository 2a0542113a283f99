// Package editor owns the editable CV: it applies user intents to the
// document, records undo history, re-renders the view and persists the
// result.
package editor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pluqqy/cvbuilder/pkg/files"
	"github.com/pluqqy/cvbuilder/pkg/history"
	"github.com/pluqqy/cvbuilder/pkg/logger"
	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/progress"
	"github.com/pluqqy/cvbuilder/pkg/render"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

var (
	// ErrNotStarted is returned for content intents before a template is chosen
	ErrNotStarted = errors.New("no template selected yet")
	// ErrNoPrinter is returned for PDF exports when no printer is configured
	ErrNoPrinter = errors.New("PDF export is not available")
	// ErrNoStore is returned by New when no persistence gateway is given
	ErrNoStore = errors.New("editor requires a store")
)

// Deps are the collaborators a Controller works with. Store is required;
// the rest fall back to usable defaults.
type Deps struct {
	Settings  *models.Settings
	Store     files.Gateway
	Renderer  Renderer
	Notifier  Notifier
	Confirmer Confirmer
	Printer   Printer
	// Scheduler drives auto-save; nil disables it
	Scheduler Scheduler
	Now       func() time.Time
	Logger    *zap.Logger
}

// Controller is the single writer of the document and its history. It is
// not safe for concurrent use.
type Controller struct {
	settings  *models.Settings
	store     files.Gateway
	renderer  Renderer
	notifier  Notifier
	confirmer Confirmer
	printer   Printer
	scheduler Scheduler
	now       func() time.Time
	log       *zap.Logger

	doc        *models.Document
	history    *history.Manager
	dirty      bool
	score      int
	lastSaved  time.Time
	lastExport string
	autosave   Task
}

// New creates a controller. Call Init before executing intents.
func New(deps Deps) (*Controller, error) {
	if deps.Store == nil {
		return nil, ErrNoStore
	}
	c := &Controller{
		settings:  deps.Settings,
		store:     deps.Store,
		renderer:  deps.Renderer,
		notifier:  deps.Notifier,
		confirmer: deps.Confirmer,
		printer:   deps.Printer,
		scheduler: deps.Scheduler,
		now:       deps.Now,
		log:       deps.Logger,
	}
	if c.settings == nil {
		c.settings = models.DefaultSettings()
	}
	if c.renderer == nil {
		c.renderer = render.NewHTMLRenderer()
	}
	if c.notifier == nil {
		c.notifier = discardNotifier{}
	}
	if c.confirmer == nil {
		c.confirmer = NeverConfirm
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.log == nil {
		c.log = logger.Named("editor")
	}
	return c, nil
}

// Init creates the empty pre-template document and a fresh history. It
// points out a previous session when one is saved.
func (c *Controller) Init() {
	c.doc = models.NewDocument()
	c.doc.Template = models.ParseTemplateID(c.settings.Editor.DefaultTemplate)
	c.doc.Presentation = c.settings.Presentation()
	c.history = history.New(c.settings.History.MaxEntries)
	c.dirty = false
	c.lastSaved = time.Time{}
	c.recomputeScore()

	if c.store.Exists() {
		c.notifier.Notify("Previous session found. Load it to restore your CV.", SeverityInfo, "Welcome back!")
	}
}

// Close stops auto-save
func (c *Controller) Close() {
	c.StopAutoSave()
}

// Execute applies one intent
func (c *Controller) Execute(in Intent) (Outcome, error) {
	return c.ExecuteContext(context.Background(), in)
}

// ExecuteContext applies one intent; ctx bounds PDF printing
func (c *Controller) ExecuteContext(ctx context.Context, in Intent) (Outcome, error) {
	if c.doc == nil {
		c.Init()
	}
	outcome, err := c.dispatch(ctx, in)
	fields := []zap.Field{zap.Stringer("intent", in.Kind), zap.Stringer("outcome", outcome)}
	if err != nil {
		c.log.Debug("intent failed", append(fields, zap.Error(err))...)
	} else {
		c.log.Debug("intent executed", fields...)
	}
	return outcome, err
}

func (c *Controller) dispatch(ctx context.Context, in Intent) (Outcome, error) {
	switch in.Kind {
	case IntentSelectTemplate:
		return c.selectTemplate(in.Template)
	case IntentEditIdentityField:
		return c.mutate(func(d *models.Document) error {
			return d.SetIdentityField(in.Field, in.Value)
		})
	case IntentEditFreeText:
		return c.mutate(func(d *models.Document) error {
			return d.SetFreeText(in.Ref, in.Value)
		})
	case IntentAppendEntry:
		return c.appendEntry(in.Section)
	case IntentChangeColor:
		return c.mutatePresentation(func(d *models.Document) error {
			return d.SetPresentation(&in.Value, nil, c.settings.FontBounds())
		})
	case IntentChangeFontSize:
		return c.mutatePresentation(func(d *models.Document) error {
			return d.SetPresentation(nil, &in.FontSize, c.settings.FontBounds())
		})
	case IntentCaptureView:
		return c.captureView(in.HTML)
	case IntentSave:
		return c.save(false)
	case IntentLoad:
		return c.load()
	case IntentReset:
		return c.reset()
	case IntentUndo:
		return c.step(c.history.Undo, "Undo successful", "Action undone")
	case IntentRedo:
		return c.step(c.history.Redo, "Redo successful", "Action redone")
	case IntentExportPrintable:
		return c.export(ctx, in.Format, in.Path)
	}
	return Failed, fmt.Errorf("%w: %s", ErrUnknownIntent, in.Kind)
}

// mutate applies fn and runs the post-mutation protocol when the document
// actually changed: dirty, snapshot, progress, render.
func (c *Controller) mutate(fn func(d *models.Document) error) (Outcome, error) {
	if !c.doc.Started {
		return Failed, ErrNotStarted
	}
	before := c.doc.State()
	if err := fn(c.doc); err != nil {
		c.doc.Restore(before)
		return Failed, err
	}
	if c.doc.State().Equal(before) {
		return NoOp, nil
	}
	if err := c.commit(false); err != nil {
		return Failed, err
	}
	return Applied, nil
}

func (c *Controller) mutatePresentation(fn func(d *models.Document) error) (Outcome, error) {
	if !c.doc.Started {
		return Failed, ErrNotStarted
	}
	before := c.doc.Presentation
	if err := fn(c.doc); err != nil {
		c.doc.Presentation = before
		return Failed, err
	}
	if c.doc.Presentation == before {
		return NoOp, nil
	}
	if err := c.commit(true); err != nil {
		return Failed, err
	}
	return Applied, nil
}

func (c *Controller) commit(presentationOnly bool) error {
	c.dirty = true
	c.history.Snapshot(c.doc.State())
	c.recomputeScore()
	if presentationOnly && c.renderer.View() != "" {
		if err := c.renderer.ApplyPresentation(c.doc.Presentation); err != nil {
			return fmt.Errorf("failed to restyle view: %w", err)
		}
		return nil
	}
	return c.render()
}

func (c *Controller) selectTemplate(id models.TemplateID) (Outcome, error) {
	if c.doc.Started && !c.confirmer.Confirm(TemplatePrompt) {
		return Declined, nil
	}
	before := c.doc.Clone()
	c.doc.SetTemplate(id, templates.DefaultContent(id))
	if err := c.render(); err != nil {
		c.doc = before
		return Failed, err
	}
	c.dirty = true
	c.history.Snapshot(c.doc.State())
	c.recomputeScore()
	c.notifier.Notify("Template selected! Start editing your CV.", SeveritySuccess, "Ready to edit!")
	c.StartAutoSave()
	return Applied, nil
}

func (c *Controller) appendEntry(section models.Section) (Outcome, error) {
	var message, title string
	outcome, err := c.mutate(func(d *models.Document) error {
		switch section {
		case models.SectionSkill:
			d.AppendSkill(templates.NewSkill(d.Template))
			message, title = "New skill added", "Skill added"
			return nil
		default:
			if _, err := d.AppendEntry(section, templates.NewEntry(d.Template, section)); err != nil {
				return err
			}
			message, title = fmt.Sprintf("New %s section added", section), "Section added"
			return nil
		}
	})
	if outcome == Applied {
		c.notifier.Notify(message, SeveritySuccess, title)
	}
	return outcome, err
}

func (c *Controller) captureView(html string) (Outcome, error) {
	if html == "" {
		html = c.renderer.View()
	}
	edits, err := c.renderer.CaptureEditedContent(html)
	if err != nil {
		return Failed, fmt.Errorf("failed to capture edits: %w", err)
	}
	return c.mutate(func(d *models.Document) error {
		return d.ApplyEdits(edits)
	})
}

func (c *Controller) step(move func() (models.EditorState, bool), message, title string) (Outcome, error) {
	state, ok := move()
	if !ok {
		return NoOp, nil
	}
	c.doc.Restore(state)
	c.dirty = true
	c.recomputeScore()
	if err := c.render(); err != nil {
		return Failed, err
	}
	c.notifier.Notify(message, SeveritySuccess, title)
	return Applied, nil
}

func (c *Controller) save(auto bool) (Outcome, error) {
	if !c.doc.Started {
		return Failed, ErrNotStarted
	}
	if c.renderer.View() == "" {
		if err := c.render(); err != nil {
			return Failed, err
		}
	}

	now := c.now()
	data, err := files.NewRecord(c.doc, c.renderer.View(), now).Encode()
	if err == nil {
		err = c.store.Save(data)
	}
	if err != nil {
		c.log.Warn("save failed", zap.Bool("auto", auto), zap.Error(err))
		c.notifier.Notify("Failed to save CV. Local storage may be full.", SeverityError, "Save failed")
		return Failed, err
	}

	c.lastSaved = now
	c.dirty = false
	title := "Saved"
	if auto {
		title = "Auto-saved"
	}
	c.notifier.Notify("CV saved successfully!", SeveritySuccess, title)
	return Applied, nil
}

func (c *Controller) load() (Outcome, error) {
	data, err := c.store.Load()
	if errors.Is(err, files.ErrNotFound) {
		c.notifier.Notify("No saved CV found. Start by creating a new one.", SeverityWarning, "No data found")
		return NoOp, nil
	}

	var doc *models.Document
	if err == nil {
		doc, err = c.decode(data)
	}
	if err != nil {
		c.log.Warn("load failed", zap.Error(err))
		c.notifier.Notify("Failed to load CV data. The file may be corrupted.", SeverityError, "Load failed")
		return Failed, err
	}

	c.doc = doc
	c.dirty = false
	c.history.Snapshot(c.doc.State())
	c.recomputeScore()
	if err := c.render(); err != nil {
		return Failed, err
	}
	c.notifier.Notify("CV loaded from previous session", SeveritySuccess, "Session restored")
	c.StartAutoSave()
	return Applied, nil
}

// decode rebuilds a document without touching the current one. Records
// saved before content was stored structurally are read from their markup.
func (c *Controller) decode(data []byte) (*models.Document, error) {
	rec, err := files.DecodeRecord(data)
	if err != nil {
		return nil, err
	}
	doc := rec.Document(c.settings.Presentation(), c.settings.FontBounds())
	if rec.Structured() {
		if !rec.SavedAt.IsZero() {
			c.lastSaved = rec.SavedAt
		}
		return doc, nil
	}

	if rec.HTML == "" {
		doc.ApplyContent(templates.DefaultContent(doc.Template).Content)
		return doc, nil
	}
	edits, err := c.renderer.CaptureEditedContent(rec.HTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", files.ErrCorrupt, err)
	}
	// the record inputs hold the identity
	edits.Identity = nil
	if err := doc.ApplyEdits(edits); err != nil {
		return nil, fmt.Errorf("%w: %v", files.ErrCorrupt, err)
	}
	return doc, nil
}

func (c *Controller) reset() (Outcome, error) {
	if !c.confirmer.Confirm(ResetPrompt) {
		return Declined, nil
	}
	if err := c.store.Remove(); err != nil {
		c.log.Warn("reset failed", zap.Error(err))
		c.notifier.Notify("Failed to clear the saved CV.", SeverityError, "Reset failed")
		return Failed, err
	}

	defaults := templates.DefaultContent(models.ParseTemplateID(c.settings.Editor.DefaultTemplate))
	defaults.Presentation = c.settings.Presentation()
	c.doc = &defaults
	c.history.Snapshot(c.doc.State())
	c.dirty = false
	c.lastSaved = time.Time{}
	c.recomputeScore()
	if err := c.render(); err != nil {
		return Failed, err
	}
	c.notifier.Notify("CV has been reset to default", SeveritySuccess, "Reset complete")
	return Applied, nil
}

func (c *Controller) export(ctx context.Context, format ExportFormat, path string) (Outcome, error) {
	if !c.doc.Started {
		return Failed, ErrNotStarted
	}
	if err := c.render(); err != nil {
		return Failed, err
	}
	html := c.renderer.View()

	var data []byte
	switch format {
	case ExportPDF:
		if c.printer == nil {
			return Failed, ErrNoPrinter
		}
		pdf, err := c.printer.Print(ctx, html)
		if err != nil {
			c.log.Warn("export failed", zap.Error(err))
			c.notifier.Notify("Could not print the CV to PDF.", SeverityError, "Export failed")
			return Failed, err
		}
		data = pdf
	case ExportHTML, "":
		format = ExportHTML
		data = []byte(html)
	default:
		return Failed, fmt.Errorf("unsupported export format %q", format)
	}

	if path == "" {
		path = files.ExportPath(c.settings, "."+string(format))
	}
	if err := files.WriteFile(path, data); err != nil {
		c.notifier.Notify("Could not write the exported CV.", SeverityError, "Export failed")
		return Failed, err
	}
	c.lastExport = path
	c.notifier.Notify(fmt.Sprintf("CV exported to %s", path), SeverityInfo, "Export CV")
	return Applied, nil
}

func (c *Controller) render() error {
	if _, err := c.renderer.RenderTemplate(c.doc.Template, c.doc); err != nil {
		c.log.Warn("render failed", zap.Error(err))
		return fmt.Errorf("failed to render CV: %w", err)
	}
	return nil
}

func (c *Controller) recomputeScore() {
	c.score = progress.Score(c.doc, templates.Get(c.doc.Template))
}

// StartAutoSave schedules the periodic save. It is a no-op when auto-save
// is disabled, no scheduler is set or a task is already running.
func (c *Controller) StartAutoSave() bool {
	if c.scheduler == nil || !c.settings.Autosave.Enabled || c.autosave != nil {
		return false
	}
	interval := c.settings.Autosave.Interval
	if interval <= 0 {
		interval = models.DefaultSettings().Autosave.Interval
	}
	c.autosave = c.scheduler.Every(interval, c.AutoSave)
	return true
}

// StopAutoSave cancels the periodic save
func (c *Controller) StopAutoSave() {
	if c.autosave != nil {
		c.autosave.Stop()
		c.autosave = nil
	}
}

// AutoSave persists the document if it changed since the last successful save
func (c *Controller) AutoSave() {
	if !c.dirty {
		return
	}
	c.save(true)
}

// Document returns the live document. Callers must not modify it.
func (c *Controller) Document() *models.Document { return c.doc }

// View returns the current rendered page
func (c *Controller) View() string { return c.renderer.View() }

// Score is the completion percentage of the document
func (c *Controller) Score() int { return c.score }

func (c *Controller) CanUndo() bool { return c.history.CanUndo() }

func (c *Controller) CanRedo() bool { return c.history.CanRedo() }

// Dirty reports unsaved changes since the last successful save
func (c *Controller) Dirty() bool { return c.dirty }

// LastSaved is the zero time until the document is saved or loaded
func (c *Controller) LastSaved() time.Time { return c.lastSaved }

// LastExport is the path of the most recent export
func (c *Controller) LastExport() string { return c.lastExport }

func (c *Controller) Settings() *models.Settings { return c.settings }

// HistoryLen reports how many snapshots are kept
func (c *Controller) HistoryLen() int { return c.history.Len() }
