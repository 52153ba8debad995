// Package terminal is the screen collaborator of the game loop, built on tcell.
//
// It owns terminal acquisition and release, a bounded-wait key poll that doubles
// as the game clock, and cell/text drawing addressed by (row, col).
// EmergencyReset restores a usable terminal from panic recovery when Teardown
// cannot run normally.
package terminal
