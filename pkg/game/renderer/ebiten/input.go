package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "kickdoor/pkg/engine/input"
)

var padButtons = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonLeftTop, "pad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "pad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "pad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "pad_right"},
	{ebiten.StandardGamepadButtonRightBottom, "pad_a"},
	{ebiten.StandardGamepadButtonRightTop, "pad_y"},
}

// pollIntent returns the first bound intent pressed this update
func pollIntent() engineinput.Intent {
	for _, raw := range pollRaw() {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		if intent.Action != engineinput.ActionNone {
			return intent
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// pollRaw collects keys and gamepad buttons that went down this update
func pollRaw() []engineinput.RawInput {
	now := time.Now()
	var raws []engineinput.RawInput

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		code := engineinput.CodeForKeyName(k.String())
		if code == "c" && ebiten.IsKeyPressed(ebiten.KeyControl) {
			code = "ctrl_c"
		}
		if code == "" {
			continue
		}
		raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now})
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range padButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: b.code, Timestamp: now})
			}
		}
	}
	return raws
}
