package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNoInput = errors.New("input closed")

// Prompter reads answers line by line. Input is echoed; pass secrets with
// flags when that matters.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(in), w: out}
}

// Ask prints label and returns the trimmed answer, or def when it is blank.
func (p *Prompter) Ask(label, def string) (string, error) {
	if def != "" {
		_, _ = fmt.Fprintf(p.w, "%s [%s]: ", label, def)
	} else {
		_, _ = fmt.Fprintf(p.w, "%s: ", label)
	}
	line, err := p.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", errNoInput
		}
		return "", err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *Prompter) AskInt(label string, def int) (int, error) {
	for {
		raw, err := p.Ask(label, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err == nil {
			return v, nil
		}
		_, _ = fmt.Fprintf(p.w, "  %q is not a number\n", raw)
	}
}

func (p *Prompter) Confirm(label string) (bool, error) {
	raw, err := p.Ask(label+" (y/N)", "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(raw) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Choose prints numbered options and returns the chosen 1-based indexes.
// Answers are comma separated; blank keeps nothing.
func (p *Prompter) Choose(label string, options []string, selected func(string) bool) ([]int, error) {
	for i, opt := range options {
		mark := " "
		if selected != nil && selected(opt) {
			mark = "x"
		}
		_, _ = fmt.Fprintf(p.w, "  [%s] %d. %s\n", mark, i+1, opt)
	}
	raw, err := p.Ask(label, "")
	if err != nil {
		return nil, err
	}
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > len(options) {
			_, _ = fmt.Fprintf(p.w, "  ignoring %q\n", part)
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
