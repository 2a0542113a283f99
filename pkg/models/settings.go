package models

import "time"

// Settings represents the application configuration
type Settings struct {
	Editor   EditorSettings   `yaml:"editor"`
	Autosave AutosaveSettings `yaml:"autosave"`
	History  HistorySettings  `yaml:"history"`
	Storage  StorageSettings  `yaml:"storage"`
	Export   ExportSettings   `yaml:"export"`
	Log      LogSettings      `yaml:"log"`
}

// EditorSettings controls the defaults a new or reset document starts with
type EditorSettings struct {
	DefaultTemplate string `yaml:"default_template"`
	AccentColor     string `yaml:"accent_color"`
	FontSize        int    `yaml:"font_size"`
	MinFontSize     int    `yaml:"min_font_size"`
	MaxFontSize     int    `yaml:"max_font_size"`
	Command         string `yaml:"command"` // external editor for long text, falls back to $EDITOR
}

// AutosaveSettings controls periodic persistence
type AutosaveSettings struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// HistorySettings controls undo/redo
type HistorySettings struct {
	MaxEntries int `yaml:"max_entries"` // 0 keeps every entry
}

// StorageSettings controls the persisted slot
type StorageSettings struct {
	Slot     string `yaml:"slot"`
	MaxBytes int64  `yaml:"max_bytes"`
}

// ExportSettings controls printable output
type ExportSettings struct {
	Filename   string `yaml:"filename"`
	ExportPath string `yaml:"export_path"`
	ChromePath string `yaml:"chrome_path"`
}

// LogSettings controls the session log
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// FontBounds returns the configured font size range
func (s *Settings) FontBounds() FontBounds {
	b := FontBounds{Min: s.Editor.MinFontSize, Max: s.Editor.MaxFontSize}
	if b.Min <= 0 {
		b.Min = MinFontSizePx
	}
	if b.Max <= 0 {
		b.Max = MaxFontSizePx
	}
	return b
}

// Presentation returns the configured default presentation
func (s *Settings) Presentation() Presentation {
	p := DefaultPresentation()
	if s.Editor.AccentColor != "" {
		p.AccentColor = NormalizeColor(s.Editor.AccentColor)
	}
	if s.Editor.FontSize > 0 {
		p.FontSizePx = s.FontBounds().Clamp(s.Editor.FontSize)
	}
	return p
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			DefaultTemplate: string(TemplateClassic),
			AccentColor:     DefaultAccentColor,
			FontSize:        DefaultFontSizePx,
			MinFontSize:     MinFontSizePx,
			MaxFontSize:     MaxFontSizePx,
		},
		Autosave: AutosaveSettings{
			Enabled:  true,
			Interval: 10 * time.Second,
		},
		History: HistorySettings{
			MaxEntries: 100,
		},
		Storage: StorageSettings{
			Slot:     "cvBuilderData",
			MaxBytes: 5 << 20,
		},
		Export: ExportSettings{
			Filename:   "cv",
			ExportPath: "./",
		},
		Log: LogSettings{
			Level: "info",
			File:  "cvbuilder.log",
		},
	}
}
