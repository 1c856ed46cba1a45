package input

// actionRegistry maps canonical action names to intents
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"right_up":   IntentRightUp,
	"right_down": IntentRightDown,
	"left_up":    IntentLeftUp,
	"left_down":  IntentLeftDown,

	"quit":         IntentQuit,
	"restart":      IntentRestart,
	"toggle_pause": IntentTogglePause,
	"toggle_mute":  IntentToggleMute,
}

var intentNames map[IntentType]string

func init() {
	intentNames = make(map[IntentType]string, len(actionRegistry))
	for name, it := range actionRegistry {
		intentNames[it] = name
	}
}

// ActionIntent resolves an action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}
