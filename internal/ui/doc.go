// Package ui hosts the demo application model: entity panes on the
// left-hand list, a context menu per entity, and a command palette,
// all driven through the popup controller in pkg/menu.
package ui
