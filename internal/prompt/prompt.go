// Package prompt implements the interactive terminal collaborators the
// game engine asks its questions through: a yes/no prompt and a
// free-text line prompt, both over buffered line-oriented input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Terminal reads answers line by line from an input stream, normally
// os.Stdin. Prompts and correction messages go to out.
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
	retry  *color.Color
}

// NewTerminal creates a Terminal reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
		retry:  color.New(color.FgYellow),
	}
}

// YesNo asks question and keeps re-prompting until the answer is a
// non-empty case-insensitive prefix of "yes" or "no". Returns an error
// only when the input stream fails (e.g. EOF), never for bad answers.
func (t *Terminal) YesNo(question string) (bool, error) {
	for {
		answer, err := t.read(question)
		if err != nil {
			return false, err
		}
		answer = strings.ToLower(answer)
		switch {
		case answer != "" && strings.HasPrefix("yes", answer):
			return true, nil
		case answer != "" && strings.HasPrefix("no", answer):
			return false, nil
		}
		t.retry.Fprintln(t.out, `Please answer "Yes" or "No".`)
	}
}

// Line asks promptText and returns the next input line, trimmed.
// Empty answers are returned as-is; looping until the answer is
// acceptable is the caller's concern.
func (t *Terminal) Line(promptText string) (string, error) {
	return t.read(promptText)
}

// read shows the prompt and reads one trimmed line. A final unterminated
// line at EOF is still returned; EOF with nothing left is an error.
func (t *Terminal) read(promptText string) (string, error) {
	fmt.Fprintf(t.out, "%s ", promptText)
	line, err := t.reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return line, nil
}
