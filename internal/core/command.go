package core

// Command represents an operator intent decoded from a key press.
// It is a closed set; labels for display live in commandLabels.
type Command int

const (
	CommandNone       Command = iota // No command processed yet
	CommandQuit                      // Q - stop the simulation
	CommandReset                     // Not bound to any key
	CommandPausePlay                 // Space - pause/resume stepping
	CommandToggleMode                // M - switch Pretty/Debug rendering
	CommandToggleFps                 // F - toggle the ~60Hz iteration cap
	CommandMoveUp                    // W - move the board up
	CommandMoveDown                  // S - move the board down
	CommandMoveLeft                  // A - move the board left
	CommandMoveRight                 // D - move the board right
	CommandNoMapping                 // Any other key
)

var commandLabels = map[Command]string{
	CommandNone:       "NONE",
	CommandQuit:       "Quit",
	CommandReset:      "Reset",
	CommandPausePlay:  "Toggle pause",
	CommandToggleMode: "Toggle print mode",
	CommandToggleFps:  "Toggle fps",
	CommandMoveUp:     "Move the board up",
	CommandMoveDown:   "Move the board down",
	CommandMoveLeft:   "Move the board left",
	CommandMoveRight:  "Move the board right",
	CommandNoMapping:  "Key not mapped",
}

// Label returns the human-readable description of a command.
func Label(c Command) string {
	if l, ok := commandLabels[c]; ok {
		return l
	}
	return "Unknown"
}

// String returns the display label.
func (c Command) String() string {
	return Label(c)
}

// Decode maps a key character to a command. Letters are case-insensitive.
// Callers are expected to drop key-release events before decoding.
func Decode(ch rune) Command {
	switch ch {
	case 'q', 'Q':
		return CommandQuit
	case 'm', 'M':
		return CommandToggleMode
	case ' ':
		return CommandPausePlay
	case 'f', 'F':
		return CommandToggleFps
	case 'w', 'W':
		return CommandMoveUp
	case 'a', 'A':
		return CommandMoveLeft
	case 's', 'S':
		return CommandMoveDown
	case 'd', 'D':
		return CommandMoveRight
	}
	return CommandNoMapping
}
