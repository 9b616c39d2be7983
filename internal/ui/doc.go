// Package ui contains the Bubble Tea program that drives the LCD menu
// simulator. The Model type owns message orchestration, while dedicated
// helpers handle key input (input.go) and the half-block frame rendering
// (view.go).
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses map onto the navigation operations of the active
//     menu.Menu (Up, Down, Enter, Back, PositionTop, JumpTo); after each
//     operation that changed state the renderer redraws the frame buffer.
//   - When a backend.Watcher is attached, Update waits for file change
//     events and rebuilds the menu tree through the reload callback.
//
// The frame buffer itself is plain pixels: View translates it to terminal
// half-blocks, so the simulator shows exactly what the panel driver was
// told to draw.
package ui
