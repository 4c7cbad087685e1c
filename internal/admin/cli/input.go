package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader, trimming the trailing newline. If EOF occurs after some input was
// read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. The returned slice should be wiped by the caller
// once used.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// terminalPrompter satisfies services.Prompter over the interactive
// terminal. Both prompts block the issuing command, mirroring the modal
// dialogs of the original console.
type terminalPrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// Confirm asks a yes/no question; only an explicit "y"/"yes" counts as yes.
func (p *terminalPrompter) Confirm(prompt string) (bool, error) {
	answer, err := GetSimpleText(p.reader, prompt+" [y/N]", p.w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// PromptText asks for one line of text. An empty line means the operator
// cancelled.
func (p *terminalPrompter) PromptText(prompt string) (string, bool, error) {
	text, err := GetSimpleText(p.reader, prompt+" (empty line to cancel)", p.w)
	if err != nil {
		return "", false, err
	}
	if text == "" {
		return "", false, nil
	}
	return text, true, nil
}
