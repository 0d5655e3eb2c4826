//go:build windows

// Package wininput types resolved keys into the focused Windows window.
package wininput

import "github.com/lxn/win"

// WinInjector injects keyboard input using WinAPI.
type WinInjector struct{}

// NewInjector returns a Windows input injector.
func NewInjector() (Injector, error) {
	return &WinInjector{}, nil
}

// sendKeyboardInput dispatches a single keyboard input event.
func sendKeyboardInput(key win.KEYBDINPUT) error {
	input := win.INPUT{
		Type: win.INPUT_KEYBOARD,
		Ki:   key,
	}
	if win.SendInput(1, &input, int32(win.SizeofINPUT)) != 1 {
		return win.GetLastError()
	}
	return nil
}

// pressVirtualKey sends a key down/up pair for a virtual key code.
func pressVirtualKey(vk uint16) error {
	if err := sendKeyboardInput(win.KEYBDINPUT{WVk: vk}); err != nil {
		return err
	}
	return sendKeyboardInput(win.KEYBDINPUT{WVk: vk, DwFlags: win.KEYEVENTF_KEYUP})
}
