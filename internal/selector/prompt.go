package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInputClosed is returned when the input ends before a valid choice.
var ErrInputClosed = errors.New("input closed before a context was chosen")

const (
	headerText = "Available contexts:"
	promptText = "Choose a context (enter the number): "
)

// Resolve returns the label to activate. With exactly one argument the
// argument is returned as is, without checking it against labels. Otherwise
// Prompt is run against in and out.
func Resolve(args, labels []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return Prompt(in, out, labels)
}

// Prompt prints labels as a numbered list and reads lines from in until one
// parses as a number between 1 and len(labels). It returns the chosen label.
func Prompt(in io.Reader, out io.Writer, labels []string) (string, error) {
	if len(labels) == 0 {
		return "", errors.New("no contexts to choose from")
	}

	renderer := lipgloss.NewRenderer(out)
	headerStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	indexStyle := renderer.NewStyle().Foreground(lipgloss.Color("8"))

	if _, err := fmt.Fprintln(out, headerStyle.Render(headerText)); err != nil {
		return "", err
	}
	for i, label := range labels {
		if _, err := fmt.Fprintf(out, "%s %s\n", indexStyle.Render(strconv.Itoa(i+1)+"."), label); err != nil {
			return "", err
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(out, promptText); err != nil {
			return "", err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read choice: %w", err)
			}
			return "", ErrInputClosed
		}

		if n, ok := parseChoice(scanner.Text(), len(labels)); ok {
			return labels[n-1], nil
		}
	}
}

// parseChoice accepts only plain decimal digits in [1, count].
func parseChoice(input string, count int) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" || strings.TrimLeft(input, "0123456789") != "" {
		return 0, false
	}

	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n, true
}
