package block

import "strings"

const defaultPromptSymbol = "$"

// Lines returns the number of leading content lines typed as the command.
func (c Console) Lines() int {
	if c.CommandLines < 1 {
		return 1
	}
	return c.CommandLines
}

// Split separates the typed command from the printed output.
func (c Console) Split() (command, output string) {
	lines := strings.Split(c.Content, "\n")
	n := c.Lines()
	if n >= len(lines) {
		return strings.Join(lines, "\n"), ""
	}
	return strings.Join(lines[:n], "\n"), strings.Join(lines[n:], "\n")
}

// PromptLabel renders the prompt drawn before the command.
func (c Console) PromptLabel() string {
	return Prompt(c.Cwd, c.Prompt, c.Prefix)
}

// Transcript renders the console as it appears once fully played:
// "<prompt> <command>" followed by the output on the next line when present.
func (c Console) Transcript() string {
	command, output := c.Split()
	var b strings.Builder
	b.WriteString(c.PromptLabel())
	b.WriteByte(' ')
	b.WriteString(command)
	if output != "" {
		b.WriteByte('\n')
		b.WriteString(output)
	}
	return b.String()
}

// Prompt builds a prompt label. A prefix replaces everything; otherwise the
// working directory, when set, precedes the prompt symbol.
func Prompt(cwd, prompt, prefix string) string {
	if prefix != "" {
		return prefix
	}
	if prompt == "" {
		prompt = defaultPromptSymbol
	}
	if cwd != "" {
		return cwd + " " + prompt
	}
	return prompt
}

// ConsoleHistory concatenates the transcripts of every console in blocks[:until]
// that shares the given title. Appended consoles render this history above
// their own session.
func ConsoleHistory(blocks []Block, until int, title string) string {
	if until > len(blocks) {
		until = len(blocks)
	}
	var parts []string
	for _, b := range blocks[:max(until, 0)] {
		console, ok := b.(Console)
		if !ok || console.Title != title {
			continue
		}
		parts = append(parts, console.Transcript())
	}
	return strings.Join(parts, "\n")
}

// ChainsFrom reports whether next is an appended console continuing prev.
func ChainsFrom(prev, next Block) bool {
	p, ok := prev.(Console)
	if !ok {
		return false
	}
	n, ok := next.(Console)
	if !ok {
		return false
	}
	return n.Append && n.Title == p.Title
}
