// Package tmui is a minimalist text-mode UI toolkit: modal menus, yes/no
// and OK dialogs, progress boxes, scrollable text viewers, multi-choice
// selectors and command output boxes drawn on a character-cell display.
//
// Open a Session with Open, drive the widgets through the embedded Console
// and Close the session to give the terminal back. Every widget paints
// through a shadow copy of the display with a single save/restore slot, so
// a dialog can be removed by restoring what was underneath it.
package tmui
