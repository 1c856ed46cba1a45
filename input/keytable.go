package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyUp:     IntentRightUp,
			tcell.KeyDown:   IntentRightDown,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'w': IntentLeftUp,
			's': IntentLeftDown,
			'q': IntentQuit,
			'r': IntentRestart,
			'p': IntentTogglePause,
			' ': IntentTogglePause,
			'm': IntentToggleMute,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event; upper-case runes fall back to their lower-case binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (IntentType, bool) {
	if ev.Key() != tcell.KeyRune {
		it, ok := kt.SpecialKeys[ev.Key()]
		return it, ok
	}

	r := ev.Rune()
	if it, ok := kt.Runes[r]; ok {
		return it, true
	}
	if lower := unicode.ToLower(r); lower != r {
		it, ok := kt.Runes[lower]
		return it, ok
	}
	return IntentNone, false
}
