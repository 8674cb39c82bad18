// Package menu implements the interaction controller shared by popup
// menus: context menus, dropdowns, and command surfaces.
//
// A Controller owns one popup. Hosts call Open with an anchor and an
// item list to begin a session and forward every Bubble Tea message to
// Update while the menu is open. The controller tracks a roving
// highlight over the eligible items (dividers and disabled entries are
// invisible to navigation), resolves the anchor to a screen position,
// dismisses itself on Escape, Tab, or an outside press, and returns
// focus to the widget captured at open.
//
// Outside-press dismissal arms one message cycle after Open so the
// press that opened the menu cannot immediately close it. Arming and
// the transient open announcement are both guarded by a session token
// that every Open and Close advances, so messages scheduled for a
// session that has since ended are ignored.
package menu
