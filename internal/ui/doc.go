// Package ui contains the Bubble Tea program that renders the desktop.
// The Model type focuses on message orchestration, while dedicated helpers
// own input routing, the start menu, content plumbing and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Mouse presses go to the start menu first when it is open, then the
//     taskbar row, then the window surfaces from the top down, then the
//     desktop icons. Motion and release always go to the surface controller,
//     which owns the drag state.
//   - Keys drive the start menu while it is open and are otherwise forwarded
//     to the active window's content.
//
// State ownership:
//   - Windows live in internal/state.Registry. The model never mutates entries
//     directly; it calls registry commands or lets internal/surface and
//     internal/taskbar do so.
//   - Start menu list state lives in internal/ui/state.Level.
//
// Hosted content:
//   - Commands returned by content are wrapped by internal/ui/command so their
//     results come back as an Envelope addressed to the owning window. An
//     envelope for a window that has since closed is dropped.
//   - Content may ask for another window by returning a menu.OpenRequest.
//   - A one-second clock tick refreshes the tray and is broadcast to every
//     open window as appkit.Tick.
package ui
