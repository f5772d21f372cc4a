// Package browser hands exported files to the desktop's default viewer.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// command builds the platform launcher for target.
func command(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

// Open opens target (a file path or URL) with the default application.
// It does not wait for the viewer to exit.
func Open(target string) error {
	cmd, err := command(runtime.GOOS, target)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}
