package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/atomicstack/menukit/internal/menus"
	"github.com/atomicstack/menukit/internal/trace"
	"github.com/atomicstack/menukit/pkg/menu"
)

// paletteWidth caps the popup; the input row shares it.
const paletteWidth = 48

// Palette is the command palette: a text input narrowing a flattened
// command list rendered through its own popup controller. Typing
// re-filters; the popup keeps the roving highlight and dismissal
// behaviour of every other menu.
type Palette struct {
	ctl    *menu.Controller
	input  textinput.Model
	source func() []menu.Item
	all    []menu.Item
}

// paletteKeys rebinds activation to Enter alone so the space bar types
// into the filter instead of activating.
func paletteKeys() menu.KeyMap {
	keys := menu.DefaultKeyMap
	keys.Activate = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "run"),
	)
	return keys
}

// NewPalette builds a closed palette. source supplies the full command
// list on open and refresh.
func NewPalette(announceClear time.Duration, log logr.Logger, source func() []menu.Item) *Palette {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type a command"
	input.CharLimit = 64
	if styles.PaletteInput != nil {
		input.TextStyle = *styles.PaletteInput
	}
	if styles.PalettePrompt != nil {
		input.PromptStyle = *styles.PalettePrompt
	}
	return &Palette{
		ctl: menu.New(
			menu.WithKeyMap(paletteKeys()),
			menu.WithMaxWidth(paletteWidth),
			menu.WithAnnounceClearAfter(announceClear),
			menu.WithLogger(log),
		),
		input:  input,
		source: source,
	}
}

// Active reports whether the palette is open.
func (p *Palette) Active() bool {
	return p.ctl.IsOpen()
}

// Open starts a palette session anchored to the top-right corner.
func (p *Palette) Open(returnTo menu.Focusable) tea.Cmd {
	p.all = p.source()
	p.input.SetValue("")
	anchor := menu.Anchor{X: menu.End(), Y: menu.At(1)}
	return tea.Batch(
		p.ctl.Open(anchor, p.all,
			menu.WithLabel("Command palette"),
			menu.WithFocusReturn(returnTo),
		),
		p.input.Focus(),
	)
}

// Refresh re-pulls the command list, as when the backend reshapes the
// entities while the palette is open, and re-applies the query.
func (p *Palette) Refresh() {
	if !p.Active() {
		return
	}
	p.all = p.source()
	p.apply()
}

// SetScreenSize forwards the host viewport to the popup controller.
func (p *Palette) SetScreenSize(width, height int) {
	p.ctl.SetScreenSize(width, height)
}

// Announcement surfaces the popup's transient open announcement.
func (p *Palette) Announcement() string {
	return p.ctl.Announcement()
}

// HandleKey routes navigation keys to the popup and everything else to
// the filter input.
func (p *Palette) HandleKey(msg tea.KeyMsg) tea.Cmd {
	keys := p.ctl.KeyMap()
	switch {
	case key.Matches(msg, keys.Next), key.Matches(msg, keys.Previous),
		key.Matches(msg, keys.First), key.Matches(msg, keys.Last),
		key.Matches(msg, keys.Activate),
		key.Matches(msg, keys.Dismiss), key.Matches(msg, keys.Release):
		cmd := p.ctl.HandleKey(msg)
		if !p.ctl.IsOpen() {
			p.close()
		}
		return cmd
	}
	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.apply()
	}
	return cmd
}

// HandleMouse forwards pointer events to the popup controller.
func (p *Palette) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	cmd := p.ctl.HandleMouse(msg)
	if !p.ctl.IsOpen() {
		p.close()
	}
	return cmd
}

// Update dispatches internal popup messages (arming, announcement
// clears) and closes the input when a selection ended the session.
func (p *Palette) Update(msg tea.Msg) tea.Cmd {
	cmd := p.ctl.Update(msg)
	if !p.ctl.IsOpen() && p.input.Focused() {
		p.close()
	}
	return cmd
}

func (p *Palette) close() {
	p.input.Blur()
	p.all = nil
	trace.Palette.Cleared()
}

func (p *Palette) apply() {
	query := p.input.Value()
	filtered := menus.Filter(p.all, query)
	p.ctl.SetItems(filtered)
	p.highlightBestMatch(filtered, query)
	trace.Palette.Query(query, menu.EligibleCount(filtered))
}

// highlightBestMatch moves the roving highlight onto the command that
// matches the query best. An empty query keeps the open-with-no-
// highlight state, and a best match that is disabled leaves the
// highlight alone.
func (p *Palette) highlightBestMatch(filtered []menu.Item, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	best := menus.BestMatchIndex(filtered, query)
	if best < 0 || !filtered[best].Eligible() {
		return
	}
	eligible := 0
	for _, item := range filtered[:best] {
		if item.Eligible() {
			eligible++
		}
	}
	p.ctl.HoverItem(eligible)
}

// Overlay splices the palette (input row plus popup) over the view.
func (p *Palette) Overlay(view string) string {
	if !p.Active() {
		return view
	}
	lines := p.ctl.Lines()
	if len(lines) == 0 {
		return view
	}
	x, y, w, _ := p.ctl.Bounds()
	inputRow := padRight(p.input.View(), w)
	block := append([]string{inputRow}, lines...)
	return spliceAt(view, block, x, y-1)
}
