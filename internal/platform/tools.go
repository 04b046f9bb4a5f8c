package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrToolNotFound is returned when a required executable is not on PATH
var ErrToolNotFound = errors.New("tool not found on PATH")

// ToolStatus reports the availability of an external executable
type ToolStatus struct {
	Name      string
	Command   string
	Path      string // resolved location, empty when unavailable
	Version   string // first line of "<cmd> -version", may be empty
	Available bool
	Detail    string
}

// LookupTool resolves command on PATH (or as a direct path)
func LookupTool(command string) (string, error) {
	cmd := strings.TrimSpace(command)
	if cmd == "" {
		return "", fmt.Errorf("%w: command not configured", ErrToolNotFound)
	}
	path, err := exec.LookPath(cmd)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrToolNotFound, cmd, err)
	}
	return path, nil
}

// CheckTool evaluates command and, when found, asks it for its version line
func CheckTool(ctx context.Context, name, command string) ToolStatus {
	status := ToolStatus{Name: name, Command: strings.TrimSpace(command)}

	path, err := LookupTool(command)
	if err != nil {
		status.Detail = err.Error()
		return status
	}
	status.Path = path
	status.Available = true

	out, err := exec.CommandContext(ctx, path, "-version").Output()
	if err != nil {
		status.Detail = fmt.Sprintf("found but -version failed: %v", err)
		return status
	}
	status.Version = firstLine(string(out))
	return status
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return s
}
