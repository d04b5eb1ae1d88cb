package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const defaultEditor = "vi"

// Editor handles editor resolution and invocation.
type Editor struct {
	configured string
}

// NewEditor creates a new Editor. configured is the editor from the config
// file and may be empty.
func NewEditor(configured string) *Editor {
	return &Editor{configured: configured}
}

// Resolve returns the editor command to use.
// Order: config > $VISUAL > $EDITOR > vi
func (e *Editor) Resolve() string {
	if e.configured != "" {
		return e.configured
	}
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	return defaultEditor
}

// Edit opens the editor with the given content and returns the edited content
// without its trailing newlines.
func (e *Editor) Edit(content string) (string, error) {
	tmpFile, err := os.CreateTemp("", "cartas-*.txt")
	if err != nil {
		return "", err
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(content + "\n"); err != nil {
		tmpFile.Close()
		return "", err
	}
	tmpFile.Close()

	// The editor may carry arguments, e.g. "code --wait".
	parts := strings.Fields(e.Resolve())
	if len(parts) == 0 {
		return "", fmt.Errorf("no editor configured")
	}
	cmd := exec.Command(parts[0], append(parts[1:], tmpPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %s: %w", parts[0], err)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(edited), "\r\n"), nil
}
