package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
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

// GetPassword prints a password prompt to w and reads the password without
// echo when stdin is a terminal. Piped input falls back to a plain line
// read from reader.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return nil, err
		}
		return []byte(strings.TrimRight(line, "\r\n")), nil
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// multilineEnd on a line of its own ends multi-line input.
const multilineEnd = "."

// GetMultiline prints a prompt to w and reads lines until a line holding
// only multilineEnd, so answers may span several paragraphs. Lines are
// joined with '\n' and returned as typed. io.EOF is returned only when
// input ends before any line was read.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n(finish with a line containing only %q)\n", prompt, multilineEnd); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if len(lines) == 0 {
				return "", err
			}
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if line == multilineEnd {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}

// chooseIndex prompts until the user enters a number in [1, n] or a blank
// line. It returns the zero-based index, or -1 for a blank line.
func chooseIndex(reader *bufio.Reader, w io.Writer, prompt string, n int) (int, error) {
	for {
		s, err := getSimpleText(reader, prompt, w)
		if err != nil {
			return -1, err
		}
		if s == "" {
			return -1, nil
		}
		if i, ok := parseChoice(s, n); ok {
			return i, nil
		}
		fmt.Fprintf(w, "Please enter a number between 1 and %d.\n", n)
	}
}

// parseChoice converts a 1-based menu choice into an index in [0, n).
func parseChoice(s string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 1 || i > n {
		return -1, false
	}
	return i - 1, true
}
