//go:build windows

// Package wininput types resolved keys into the focused Windows window.
package wininput

import (
	"unicode/utf16"

	"github.com/lxn/win"
)

// TypeUnicode types Unicode text into the focused window.
func (w *WinInjector) TypeUnicode(text string) error {
	if text == "" {
		return nil
	}
	for _, code := range utf16.Encode([]rune(text)) {
		if err := sendKeyboardInput(win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE}); err != nil {
			return err
		}
		if err := sendKeyboardInput(win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE | win.KEYEVENTF_KEYUP}); err != nil {
			return err
		}
	}
	return nil
}

// Enter sends an Enter key press.
func (w *WinInjector) Enter() error {
	return pressVirtualKey(win.VK_RETURN)
}

// Backspace deletes the character before the caret.
func (w *WinInjector) Backspace() error {
	return pressVirtualKey(win.VK_BACK)
}
