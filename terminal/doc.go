// Package terminal runs the game in a text terminal through tcell.
//
// The 640x480 world is scaled onto whatever grid the terminal offers, each
// sprite becomes a block of cells painted in its texture's average colour.
// Terminals report key presses and auto-repeats but never releases, so held
// state is inferred: a key counts as held for a short window after its most
// recent event (see HeldKeys).
//
// The window is sized for the auto-repeat rate, not the initial repeat delay
// (typically 250-660ms). Holding a key moves the paddle for one window, stalls
// until the keyboard starts repeating, then moves steadily. A window long enough
// to bridge the delay would keep paddles moving that long after release, and
// -hold trades one against the other.
package terminal
