package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pluqqy/cvbuilder/pkg/editor"
	"github.com/pluqqy/cvbuilder/pkg/files"
	"github.com/pluqqy/cvbuilder/pkg/models"
)

func withIO(t *testing.T, input string) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	prevIn, prevOut, prevErr := stdin, stdout, stderr
	SetIO(strings.NewReader(input), out, errOut)
	t.Cleanup(func() {
		stdin, stdout, stderr = prevIn, prevOut, prevErr
		SetGlobalFlags(false, false, false)
	})
	return out, errOut
}

func withProject(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), files.DefaultProjectDir)
	files.SetProjectDir(dir)
	t.Cleanup(func() { files.SetProjectDir("") })
	return dir
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty uses default yes", "\n", true, true},
		{"empty uses default no", "\n", false, false},
		{"no trailing newline", "y", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := withIO(t, tt.input)
			got, err := Confirm("Reset?", tt.defaultYes)
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.HasPrefix(out.String(), "Reset?") {
				t.Errorf("prompt not written, got %q", out.String())
			}
		})
	}
}

func TestConfirmSkipped(t *testing.T) {
	out, _ := withIO(t, "")
	SetGlobalFlags(false, false, true)

	ok, err := Confirm("Reset?", false)
	if err != nil || !ok {
		t.Fatalf("Confirm() = %v, %v; want true, nil", ok, err)
	}
	if out.Len() != 0 {
		t.Errorf("no prompt expected, got %q", out.String())
	}
}

func TestConfirmerDeclinesOnEOF(t *testing.T) {
	withIO(t, "")
	if Confirmer().Confirm(editor.Prompt{Message: "Continue?"}) {
		t.Error("expected decline when input is closed")
	}
}

func TestNotifier(t *testing.T) {
	out, errOut := withIO(t, "")
	SetGlobalFlags(false, true, false)

	n := Notifier()
	n.Notify("CV saved successfully!", editor.SeveritySuccess, "Saved")
	n.Notify("CV exported to cv.html", editor.SeverityInfo, "Export CV")
	n.Notify("Failed to save CV. Local storage may be full.", editor.SeverityError, "Save failed")

	if !strings.Contains(out.String(), "OK: CV saved successfully!") {
		t.Errorf("missing success line in %q", out.String())
	}
	if !strings.Contains(out.String(), "INFO: CV exported to cv.html") {
		t.Errorf("missing info line in %q", out.String())
	}
	if !strings.Contains(errOut.String(), "ERROR: Save failed: Failed to save CV.") {
		t.Errorf("missing error line in %q", errOut.String())
	}
}

func TestQuietSuppressesSuccess(t *testing.T) {
	out, errOut := withIO(t, "")
	SetGlobalFlags(true, true, false)

	PrintSuccess("done")
	PrintInfo("info")
	PrintWarning("careful")

	if out.Len() != 0 {
		t.Errorf("quiet mode printed %q", out.String())
	}
	if !strings.Contains(errOut.String(), "WARNING: careful") {
		t.Errorf("warnings must still print, got %q", errOut.String())
	}
}

func TestValidateProject(t *testing.T) {
	dir := withProject(t)

	ctx, _ := NewCommandContext()
	if err := ctx.ValidateProject(); err == nil {
		t.Fatal("expected error before init")
	}

	if err := files.InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure() error = %v", err)
	}
	ctx, _ = NewCommandContext()
	if err := ctx.ValidateProject(); err != nil {
		t.Fatalf("ValidateProject() error = %v", err)
	}
	if ctx.ProjectPath != dir {
		t.Errorf("ProjectPath = %s, want %s", ctx.ProjectPath, dir)
	}
}

func TestOpenEditorStartsFreshAndRestores(t *testing.T) {
	withIO(t, "")
	withProject(t)
	if err := files.InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure() error = %v", err)
	}

	ctx, _ := NewCommandContext()
	ctrl, err := ctx.OpenEditor()
	if err != nil {
		t.Fatalf("OpenEditor() error = %v", err)
	}
	doc := ctrl.Document()
	if !doc.Started || doc.Template != models.TemplateClassic {
		t.Fatalf("expected a started classic CV, got started=%v template=%s", doc.Started, doc.Template)
	}

	if _, err := ctrl.Execute(editor.EditIdentityField("name", "Jane Doe")); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if err := SaveEditor(ctrl); err != nil {
		t.Fatalf("SaveEditor() error = %v", err)
	}

	ctx, _ = NewCommandContext()
	restored, err := ctx.OpenEditor()
	if err != nil {
		t.Fatalf("OpenEditor() after save error = %v", err)
	}
	if got := restored.Document().Identity.Name; got != "Jane Doe" {
		t.Errorf("restored name = %q, want Jane Doe", got)
	}
	if restored.Dirty() {
		t.Error("restored CV should not be dirty")
	}
}

func TestOpenEditorCorruptSave(t *testing.T) {
	withIO(t, "")
	withProject(t)

	ctx, _ := NewCommandContext()
	if err := ctx.Store().Save([]byte("{not json")); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}
	if _, err := ctx.OpenEditor(); err == nil {
		t.Fatal("expected error for corrupt save")
	}
}

func TestValidators(t *testing.T) {
	if err := ValidateTemplate("Elite"); err != nil {
		t.Errorf("ValidateTemplate(Elite) error = %v", err)
	}
	if err := ValidateTemplate("fancy"); err == nil || !strings.Contains(err.Error(), "classic, modern, minimalist, elite") {
		t.Errorf("ValidateTemplate(fancy) error = %v", err)
	}
	if s, err := ValidateSection("skills"); err != nil || s != models.SectionSkill {
		t.Errorf("ValidateSection(skills) = %v, %v", s, err)
	}
	if err := ValidateIdentityField("LinkedIn"); err != nil {
		t.Errorf("ValidateIdentityField(LinkedIn) error = %v", err)
	}
	if err := ValidateIdentityField("age"); err == nil {
		t.Error("expected error for unknown field")
	}
	if err := ValidateOutputFormat("toml"); err == nil {
		t.Error("expected error for toml")
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatBytes(2048); got != "2.0 KiB" {
		t.Errorf("FormatBytes(2048) = %q", got)
	}
	if got := TruncateString("Senior Software Engineer", 10); got != "Senior ..." {
		t.Errorf("TruncateString() = %q", got)
	}

	var buf bytes.Buffer
	if err := OutputResults(&buf, "yaml", map[string]int{"score": 83}); err != nil {
		t.Fatalf("OutputResults() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "score: 83" {
		t.Errorf("yaml output = %q", buf.String())
	}
}
