package field

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iw2rmb/richfield/emotes"
	"github.com/iw2rmb/richfield/internal/grapheme"
)

// Model is a Bubble Tea component wrapping a bubbles textarea in a labeled,
// form-associated field. The textarea owns editing; the Model owns length
// enforcement, the counter, the mirrored form value, and emote completion.
type Model struct {
	cfg     Config
	opts    Options
	style   Style
	keyMap  KeyMap
	printer *message.Printer

	ta textarea.Model

	// value mirrors the editor's live content after every update, the way a
	// hidden form input would.
	value string

	completion completionState
}

func New(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = cfg.Placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	if cfg.Width > 0 {
		ta.SetWidth(cfg.Width)
	}
	if cfg.Height > 0 {
		ta.SetHeight(cfg.Height)
	}
	ta.Focus()

	m := Model{
		cfg:     cfg,
		opts:    BuildOptions(cfg.Emotes),
		style:   normalizeStyle(cfg.Style),
		keyMap:  normalizeKeyMap(cfg.KeyMap),
		printer: message.NewPrinter(normalizeLocale(cfg.Locale)),
		ta:      ta,
	}

	if cfg.Value != "" {
		v := cfg.Value
		if cfg.MaxLength > 0 {
			v = grapheme.Truncate(v, cfg.MaxLength)
		}
		m.ta.SetValue(v)
	}
	// The initial value is state, not a change: no event fires here.
	m.value = m.ta.Value()
	return m
}

func (m Model) Init() tea.Cmd { return textarea.Blink }

// Label returns the field's label text.
func (m Model) Label() string { return m.cfg.Label }

// Name returns the form key the mirrored value is associated with.
func (m Model) Name() string { return m.cfg.Name }

// Value returns the mirrored form value. It equals the editor's live content
// after every update.
func (m Model) Value() string { return m.value }

// Length returns the current content length in grapheme clusters.
func (m Model) Length() int { return grapheme.Count(m.value) }

// MaxLength returns the configured cap, 0 when unlimited.
func (m Model) MaxLength() int { return m.cfg.MaxLength }

// Options returns the current derived editor configuration.
func (m Model) Options() Options { return m.opts }

// SetEmotes replaces the picker entries and rebuilds the derived Options.
func (m Model) SetEmotes(entries []emotes.Entry) Model {
	m.opts = BuildOptions(entries)
	return m.refreshCompletion()
}

// CompletionOpen reports whether the emote popup is showing.
func (m Model) CompletionOpen() bool { return m.completion.visible }

func (m Model) Focused() bool { return m.ta.Focused() }

func (m *Model) Focus() tea.Cmd { return m.ta.Focus() }

func (m *Model) Blur() {
	m.ta.Blur()
	m.completion = completionState{}
}

// SetSize resizes the wrapped editor. The label and counter row sit outside
// this budget.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.ta.SetWidth(width)
	m.ta.SetHeight(height)
	return m
}

func normalizeStyle(st Style) Style {
	if reflect.DeepEqual(st, Style{}) {
		return DefaultStyle()
	}
	return st
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}

func normalizeLocale(tag language.Tag) language.Tag {
	if tag == language.Und {
		return language.English
	}
	return tag
}
