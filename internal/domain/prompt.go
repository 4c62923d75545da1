package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const DefaultPromptExpr = `\S*#`

// Prompt recognises the device's terminal prompt. A prompt line starts with
// the prompt; the device is idle when the last line of output is the prompt
// alone.
type Prompt struct {
	expr string
	lead *regexp.Regexp
	idle *regexp.Regexp
}

func NewPrompt(expr string) (Prompt, error) {
	if strings.TrimSpace(expr) == "" {
		expr = DefaultPromptExpr
	}

	lead, err := regexp.Compile(`^(?:` + expr + `)`)
	if err != nil {
		return Prompt{}, fmt.Errorf("compile prompt %q: %w", expr, err)
	}
	idle, err := regexp.Compile(`^(?:` + expr + `)[ \t]*$`)
	if err != nil {
		return Prompt{}, fmt.Errorf("compile prompt %q: %w", expr, err)
	}

	return Prompt{expr: expr, lead: lead, idle: idle}, nil
}

func MustPrompt(expr string) Prompt {
	p, err := NewPrompt(expr)
	if err != nil {
		panic(err)
	}

	return p
}

func (p Prompt) String() string {
	return p.expr
}

func (p Prompt) Idle(output string) bool {
	if p.idle == nil {
		return false
	}

	last := output
	if i := strings.LastIndexByte(output, '\n'); i >= 0 {
		last = output[i+1:]
	}

	return p.idle.MatchString(strings.TrimRight(last, "\r"))
}

// Boundaries counts the prompt lines in output.
func (p Prompt) Boundaries(output string) int {
	if p.lead == nil {
		return 0
	}

	count := 0
	for _, line := range strings.Split(output, "\n") {
		if p.lead.MatchString(strings.TrimRight(line, "\r")) {
			count++
		}
	}

	return count
}

// Until is the completion condition for a read: the device is idle at its
// prompt and at least Boundaries prompt lines have been seen.
type Until struct {
	Prompt     Prompt
	Boundaries int
}

func (u Until) Satisfied(output string) bool {
	if !u.Prompt.Idle(output) {
		return false
	}

	want := u.Boundaries
	if want < 1 {
		want = 1
	}

	return u.Prompt.Boundaries(output) >= want
}
