package tui

import (
	"runtime"

	"github.com/charmbracelet/bubbles/key"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.For(GetOS())
}

// For returns the shortcut for a given OS
func (s ShortcutKey) For(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Keys returns the OS shortcut followed by the default when they differ.
// Both stay bound so the documented key always works.
func (s ShortcutKey) Keys() []string {
	keys := []string{s.Get()}
	if s.Default != "" && s.Default != keys[0] {
		keys = append(keys, s.Default)
	}
	return keys
}

// Shortcuts maps editor actions to keys. Linux and Windows get alt
// variants where the ctrl chord collides with terminal signals.
var Shortcuts = struct {
	Save     ShortcutKey
	Load     ShortcutKey
	Reset    ShortcutKey
	Undo     ShortcutKey
	Redo     ShortcutKey
	Template ShortcutKey
	Append   ShortcutKey
	Color    ShortcutKey
	Bigger   ShortcutKey
	Smaller  ShortcutKey
	Edit     ShortcutKey
	External ShortcutKey
	Export   ShortcutKey
	PDF      ShortcutKey
	Copy     ShortcutKey
	Preview  ShortcutKey
	Quit     ShortcutKey
}{
	Save: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s", // Avoid Ctrl+S terminal conflict (XOFF)
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	Load:  ShortcutKey{Default: "ctrl+o"},
	Reset: ShortcutKey{Default: "ctrl+r"},
	Undo: ShortcutKey{
		Mac:     "ctrl+z",
		Linux:   "alt+z", // Avoid SIGTSTP (process suspension)
		Windows: "alt+z",
		Default: "ctrl+z",
	},
	Redo:     ShortcutKey{Default: "ctrl+y"},
	Template: ShortcutKey{Default: "t"},
	Append:   ShortcutKey{Default: "a"},
	Color:    ShortcutKey{Default: "c"},
	Bigger:   ShortcutKey{Default: "+"},
	Smaller:  ShortcutKey{Default: "-"},
	Edit:     ShortcutKey{Default: "enter"},
	External: ShortcutKey{
		Mac:     "ctrl+x",
		Linux:   "alt+x",
		Windows: "alt+x",
		Default: "ctrl+x",
	},
	Export:  ShortcutKey{Default: "e"},
	PDF:     ShortcutKey{Default: "p"},
	Copy:    ShortcutKey{Default: "y"},
	Preview: ShortcutKey{Default: "tab"},
	Quit:    ShortcutKey{Default: "q"},
}

// KeyMap holds the editor's key bindings
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	External key.Binding
	Append   key.Binding
	Template key.Binding
	Color    key.Binding
	Bigger   key.Binding
	Smaller  key.Binding
	Save     key.Binding
	Load     key.Binding
	Reset    key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Export   key.Binding
	PDF      key.Binding
	Copy     key.Binding
	Preview  key.Binding
	Quit     key.Binding
}

func binding(s ShortcutKey, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(s.Keys()...), key.WithHelp(s.Get(), desc))
}

// DefaultKeyMap returns the bindings for the current OS
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:     binding(Shortcuts.Edit, "edit"),
		External: binding(Shortcuts.External, "$EDITOR"),
		Append:   binding(Shortcuts.Append, "add entry"),
		Template: binding(Shortcuts.Template, "template"),
		Color:    binding(Shortcuts.Color, "color"),
		Bigger:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "font size")),
		Smaller:  key.NewBinding(key.WithKeys("-", "_")),
		Save:     binding(Shortcuts.Save, "save"),
		Load:     binding(Shortcuts.Load, "load"),
		Reset:    binding(Shortcuts.Reset, "reset"),
		Undo:     binding(Shortcuts.Undo, "undo"),
		Redo:     binding(Shortcuts.Redo, "redo"),
		Export:   binding(Shortcuts.Export, "export html"),
		PDF:      binding(Shortcuts.PDF, "export pdf"),
		Copy:     binding(Shortcuts.Copy, "copy"),
		Preview:  binding(Shortcuts.Preview, "preview"),
		Quit:     key.NewBinding(key.WithKeys(Shortcuts.Quit.Get(), "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Template, k.Save, k.Undo, k.Redo, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.External, k.Append},
		{k.Template, k.Color, k.Bigger, k.Preview},
		{k.Save, k.Load, k.Reset, k.Undo, k.Redo},
		{k.Export, k.PDF, k.Copy, k.Quit},
	}
}
