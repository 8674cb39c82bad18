package menu

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
)

// Focusable is the host widget that regains focus when the menu closes.
// CanFocus lets hosts veto restoration once the widget has gone away.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
	CanFocus() bool
}

// Controller composes the menu primitives behind the open, close, and
// input contract. One controller drives one popup; hosts embed several
// to show several menus at once. All methods tolerate messages from a
// session that has already ended.
type Controller struct {
	items    []Item
	eligible []Item
	focus    Focus

	anchor Anchor
	pos    Position

	open    bool
	session uint64
	armed   bool

	label        string
	announcement string
	clearAfter   time.Duration

	returnTo Focusable

	screenWidth  int
	screenHeight int
	width        int
	height       int
	maxWidth     int

	keys  KeyMap
	theme Theme
	log   logr.Logger
}

// Option configures a Controller at construction time.
type Option func(*Controller)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(c *Controller) { c.keys = keys }
}

// WithTheme replaces the default popup styles.
func WithTheme(theme Theme) Option {
	return func(c *Controller) { c.theme = theme }
}

// WithLogger routes controller traces to the given logger.
func WithLogger(log logr.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithAnnounceClearAfter adjusts how long the open announcement stays.
func WithAnnounceClearAfter(d time.Duration) Option {
	return func(c *Controller) { c.clearAfter = d }
}

// WithMaxWidth caps the rendered popup width in cells.
func WithMaxWidth(w int) Option {
	return func(c *Controller) { c.maxWidth = w }
}

// New returns a closed controller ready for Open.
func New(opts ...Option) *Controller {
	c := &Controller{
		focus:      NewFocus(),
		clearAfter: DefaultAnnounceClearAfter,
		maxWidth:   40,
		keys:       DefaultKeyMap,
		theme:      DefaultTheme(),
		log:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OpenOption configures a single open session.
type OpenOption func(*openConfig)

type openConfig struct {
	label    string
	returnTo Focusable
}

// WithLabel supplies the accessible name for the session. Without it
// the controller falls back to a generated default.
func WithLabel(label string) OpenOption {
	return func(cfg *openConfig) { cfg.label = label }
}

// WithFocusReturn captures the widget that regains focus on close.
func WithFocusReturn(target Focusable) OpenOption {
	return func(cfg *openConfig) { cfg.returnTo = target }
}

type armMsg struct {
	session uint64
}

// armDismiss delivers the outside-press arming for a session one
// message cycle after Open, so the press that opened the menu cannot
// dismiss it.
func armDismiss(session uint64) tea.Cmd {
	return func() tea.Msg {
		return armMsg{session: session}
	}
}

// Open begins a session: navigation resets to None, the focus anchor is
// captured and blurred, the anchor resolves to a position, and the
// dismissal arming plus announcement clear are scheduled. Calling Open
// while already open starts a fresh session around the new items.
func (c *Controller) Open(anchor Anchor, items []Item, opts ...OpenOption) tea.Cmd {
	var cfg openConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	c.session++
	c.armed = false
	c.open = true
	c.items = CloneItems(items)
	c.eligible = EligibleItems(c.items)
	c.focus.Reset()
	c.anchor = anchor
	c.pos = anchor.Resolve()

	c.returnTo = cfg.returnTo
	if c.returnTo != nil {
		c.returnTo.Blur()
	}

	c.label = cfg.label
	if c.label == "" {
		c.label = defaultLabel()
	}
	c.announcement = openAnnouncement(c.label, len(c.eligible))
	c.measure()

	c.log.V(1).Info("menu opened",
		"session", c.session,
		"label", c.label,
		"items", len(c.items),
		"eligible", len(c.eligible),
	)

	return tea.Batch(armDismiss(c.session), c.scheduleAnnounceClear(c.session))
}

// Close ends the session: arming is torn down, focus returns to the
// captured anchor when it still accepts focus, and navigation plus the
// announcement clear. Always safe to call; closing a closed menu does
// nothing.
func (c *Controller) Close() tea.Cmd {
	if !c.open {
		return nil
	}
	c.session++
	c.armed = false
	c.open = false
	c.focus.Reset()
	c.announcement = ""
	c.items = nil
	c.eligible = nil

	var restore tea.Cmd
	if c.returnTo != nil && c.returnTo.CanFocus() {
		restore = c.returnTo.Focus()
	}
	c.returnTo = nil

	c.log.V(1).Info("menu closed", "session", c.session)
	return restore
}

// SetItems replaces the item list mid-session, as when entries enable
// or disable asynchronously while the menu is open. The highlight is
// clamped rather than reset: an index the new subset cannot satisfy
// becomes None.
func (c *Controller) SetItems(items []Item) {
	if !c.open {
		return
	}
	c.items = CloneItems(items)
	c.eligible = EligibleItems(c.items)
	c.focus.Clamp(len(c.eligible))
	c.measure()
}

// SetScreenSize records the host viewport so far-edge anchors resolve.
func (c *Controller) SetScreenSize(width, height int) {
	c.screenWidth = width
	c.screenHeight = height
}

// Update dispatches a Bubble Tea message to the controller. Hosts
// forward every message; anything irrelevant, stale, or arriving while
// closed is ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case armMsg:
		if c.open && msg.session == c.session {
			c.armed = true
			c.log.V(1).Info("dismissal armed", "session", c.session)
		} else {
			c.log.V(2).Info("stale dismissal arm dropped", "session", msg.session)
		}
	case announceClearMsg:
		if c.open && msg.session == c.session {
			c.announcement = ""
		}
	case tea.KeyMsg:
		return c.HandleKey(msg)
	case tea.MouseMsg:
		return c.HandleMouse(msg)
	case tea.WindowSizeMsg:
		c.SetScreenSize(msg.Width, msg.Height)
	}
	return nil
}

// HandleKey routes a key press while the menu is open. Handled keys are
// consumed by the menu; hosts should not act on them again. Keys that
// arrive while closed are ignored rather than treated as errors, since
// a just-closed session can still have input in flight.
func (c *Controller) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if !c.open {
		return nil
	}
	n := len(c.eligible)
	switch {
	case key.Matches(msg, c.keys.Next):
		c.focus.Next(n)
	case key.Matches(msg, c.keys.Previous):
		c.focus.Previous(n)
	case key.Matches(msg, c.keys.First):
		c.focus.First(n)
	case key.Matches(msg, c.keys.Last):
		c.focus.Last(n)
	case key.Matches(msg, c.keys.Activate):
		return c.Activate()
	case key.Matches(msg, c.keys.Dismiss), key.Matches(msg, c.keys.Release):
		return c.Close()
	}
	return nil
}

// HandleMouse routes pointer events while the menu is open. Presses
// outside the popup dismiss it once arming has landed, presses on an
// eligible row activate it, and motion moves the highlight in and out.
func (c *Controller) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if !c.open {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if !c.Contains(msg.X, msg.Y) {
			if c.armed {
				c.log.V(1).Info("outside press dismissed menu", "session", c.session)
				return c.Close()
			}
			return nil
		}
		if msg.Button == tea.MouseButtonLeft {
			if i, ok := c.eligibleIndexAt(msg.Y); ok {
				c.focus.Enter(i, len(c.eligible))
				return c.Activate()
			}
		}
	case tea.MouseActionMotion:
		if i, ok := c.eligibleIndexAt(msg.Y); ok && c.Contains(msg.X, msg.Y) {
			c.HoverItem(i)
		} else {
			c.HoverLeave()
		}
	}
	return nil
}

// HoverItem highlights the eligible item under the pointer.
func (c *Controller) HoverItem(eligibleIndex int) {
	if !c.open {
		return
	}
	c.focus.Enter(eligibleIndex, len(c.eligible))
}

// HoverLeave drops the highlight when the pointer leaves the items.
func (c *Controller) HoverLeave() {
	if !c.open {
		return
	}
	c.focus.Leave()
}

// Activate runs the highlighted item's action and closes the menu. With
// nothing highlighted it does nothing and never closes a menu that was
// already closed.
func (c *Controller) Activate() tea.Cmd {
	if !c.open {
		return nil
	}
	i := c.focus.Index()
	if i == None || i >= len(c.eligible) {
		return nil
	}
	return c.activate(c.eligible[i])
}

// ClickItem activates the given item directly, as from a pointer click
// on its row. Dividers and disabled items do nothing.
func (c *Controller) ClickItem(item Item) tea.Cmd {
	if !c.open || !item.Eligible() {
		return nil
	}
	return c.activate(item)
}

func (c *Controller) activate(item Item) tea.Cmd {
	c.log.V(1).Info("menu item activated", "session", c.session, "item", item.ID)
	var action tea.Cmd
	if item.Action != nil {
		action = item.Action()
	}
	return tea.Batch(action, c.Close())
}

// IsOpen reports whether a session is in progress.
func (c *Controller) IsOpen() bool { return c.open }

// Armed reports whether outside-press dismissal is active.
func (c *Controller) Armed() bool { return c.armed }

// Items returns a copy of the current item list.
func (c *Controller) Items() []Item { return CloneItems(c.items) }

// Eligible returns a copy of the current eligible subset.
func (c *Controller) Eligible() []Item { return CloneItems(c.eligible) }

// Highlighted returns the highlighted eligible index, or None.
func (c *Controller) Highlighted() int { return c.focus.Index() }

// HighlightedItem returns the highlighted item when one is highlighted.
func (c *Controller) HighlightedItem() (Item, bool) {
	i := c.focus.Index()
	if i == None || i >= len(c.eligible) {
		return Item{}, false
	}
	return c.eligible[i], true
}

// Position returns the placement resolved at open.
func (c *Controller) Position() Position { return c.pos }

// Label returns the accessible name for the current session.
func (c *Controller) Label() string { return c.label }

// KeyMap returns the controller's active key bindings.
func (c *Controller) KeyMap() KeyMap { return c.keys }

// Announcement returns the transient open announcement, or empty once
// it has cleared. Hosts surface this in a status line or bridge it to a
// screen reader.
func (c *Controller) Announcement() string { return c.announcement }

// Role returns the assistive-technology role of the popup surface.
func (c *Controller) Role() Role { return RoleMenu }
