//go:build darwin
// +build darwin

package clipboard

import (
	"os/exec"
	"strings"
)

// Copy uses pbcopy on macOS, with OSC52 as a last resort for remote shells.
func Copy(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return copyOSC52(text)
	}
	return nil
}
