package app

import rl "github.com/gen2brain/raylib-go/raylib"

// keyCodes maps raylib keys to the key codes the drawer is configured with
var keyCodes = map[int32]string{
	rl.KeySpace:        "Space",
	rl.KeyEscape:       "Escape",
	rl.KeyEnter:        "Enter",
	rl.KeyTab:          "Tab",
	rl.KeyBackspace:    "Backspace",
	rl.KeyLeftShift:    "ShiftLeft",
	rl.KeyRightShift:   "ShiftRight",
	rl.KeyLeftControl:  "ControlLeft",
	rl.KeyRightControl: "ControlRight",
	rl.KeyLeftAlt:      "AltLeft",
	rl.KeyRightAlt:     "AltRight",
	rl.KeyLeftSuper:    "MetaLeft",
	rl.KeyRightSuper:   "MetaRight",
	rl.KeyF1:           "F1",
	rl.KeyF2:           "F2",
	rl.KeyF3:           "F3",
	rl.KeyF4:           "F4",
}

func init() {
	for k := int32(rl.KeyA); k <= rl.KeyZ; k++ {
		keyCodes[k] = "Key" + string(rune('A'+k-rl.KeyA))
	}
	for k := int32(rl.KeyZero); k <= rl.KeyNine; k++ {
		keyCodes[k] = "Digit" + string(rune('0'+k-rl.KeyZero))
	}
}

// keyCode returns the code for a raylib key, or "" when it has none
func keyCode(key int32) string {
	return keyCodes[key]
}
