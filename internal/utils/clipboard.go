package utils

import "github.com/atotto/clipboard"

// CopyToClipboard places text on the system clipboard. Callers copying a
// decrypted password should clear it afterwards with ClearClipboard.
func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// ClearClipboard overwrites the clipboard content with an empty string so a
// copied secret does not linger after use.
func ClearClipboard() error {
	return clipboard.WriteAll("")
}
