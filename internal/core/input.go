package core

// KeyEvent is a single decoded keyboard event as delivered by an input source.
type KeyEvent struct {
	Char   rune // Character payload of the key
	IsDown bool // True for key press, false for key release
}

// KeyDown returns a key-press event for the given character.
func KeyDown(ch rune) KeyEvent {
	return KeyEvent{Char: ch, IsDown: true}
}

// KeyUp returns a key-release event for the given character.
func KeyUp(ch rune) KeyEvent {
	return KeyEvent{Char: ch, IsDown: false}
}
