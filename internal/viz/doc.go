// Package viz draws the particle network in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view of one engine, ticked at 60 frames per second
//   - [Canvas]: braille pixel canvas with per-cell color and tint
//   - [Renderer]: paints a [sim.Snapshot] onto a canvas
//   - [RunInteractive]: preset picker in front of the live view
//
// The engine viewport follows the terminal: every resize is forwarded as
// canvas dots times [WorldPerDot].
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Repopulate
//	P     - Toggle polarity forces
//	Tab   - Select parameter, Up/Down to tune
//	N     - Next preset
//	L/C   - Toggle links / charge glow
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
package viz
