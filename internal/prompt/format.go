package prompt

import (
	"regexp"
	"strings"
)

// copyPromptRegex matches the prompt prefixes stripped on copy. Group 2 holds
// the rest of the line up to the first line terminator, so a CR or a Unicode
// line or paragraph separator ends it just like LF.
var copyPromptRegex = regexp.MustCompile(`^(>>> |\.\.\. |\$ )([^\r\n\x{2028}\x{2029}]*)`)

// FormatCopyText strips interactive-shell prompts from text about to be
// copied and drops one trailing newline.
//
// Prompt stripping only kicks in when the text starts with a prompt. Once it
// does, every line without a prompt is discarded, so command output that
// follows a "$ " line never reaches the clipboard.
func FormatCopyText(text string) string {
	if copyPromptRegex.MatchString(text) {
		lines := strings.Split(text, "\n")
		out := make([]string, 0, len(lines))
		for _, line := range lines {
			if m := copyPromptRegex.FindStringSubmatch(line); m != nil {
				out = append(out, m[2])
			}
		}
		text = strings.Join(out, "\n")
	}
	return strings.TrimSuffix(text, "\n")
}
