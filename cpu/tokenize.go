package cpu

import (
	"strings"
	"unicode"
)

// SplitInstruction splits a source line into its mnemonic and arguments.
// Arguments follow the quoting rules of ParseArgs.
func SplitInstruction(line string) (mnemonic string, args []string) {
	line = strings.TrimSpace(line)
	end := strings.IndexFunc(line, unicode.IsSpace)
	if end < 0 {
		return line, nil
	}

	return line[:end], ParseArgs(line[end:])
}

// ParseArgs splits text at whitespace. A double quoted section keeps its
// whitespace, and \" stands for a literal quote. An empty pair of quotes is
// an empty argument.
func ParseArgs(text string) (args []string) {
	var sb strings.Builder
	in_quote := false
	quoted := false

	flush := func() {
		if sb.Len() > 0 || quoted {
			args = append(args, sb.String())
		}
		sb.Reset()
		quoted = false
	}

	runes := []rune(text)
	for n := 0; n < len(runes); n++ {
		c := runes[n]
		switch {
		case c == '\\' && n+1 < len(runes) && runes[n+1] == '"':
			sb.WriteRune('"')
			n++
		case c == '"':
			in_quote = !in_quote
			quoted = true
		case !in_quote && unicode.IsSpace(c):
			flush()
		default:
			sb.WriteRune(c)
		}
	}
	flush()

	return
}

// labelOf returns the label declared by a line, if any.
func labelOf(line string) (label string, ok bool) {
	words := strings.Fields(line)
	if len(words) == 0 || !strings.HasSuffix(words[0], ":") {
		return
	}

	return strings.TrimRight(words[0], ":"), true
}

// isDirective returns true for preprocessor directive lines.
func isDirective(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}
