package controller

import "github.com/gdamore/tcell/v2"

// tcell reports letter presses as KeyRune with the rune attached. Register
// key codes for the letters we bind so they can live in the same event map
// as the named keys. Letter codepoints don't collide with tcell's named
// keys, which sit below 32 and above 255.
const (
	KeyD = tcell.Key('d')
	KeyQ = tcell.Key('q')
)

func initKeys() {
	tcell.KeyNames[KeyD] = "d"
	tcell.KeyNames[KeyQ] = "q"
}

// AsKey converts a rune keypress into the corresponding key code.
func AsKey(evt *tcell.EventKey) tcell.Key {
	if evt.Key() != tcell.KeyRune {
		return evt.Key()
	}

	return tcell.Key(evt.Rune())
}
