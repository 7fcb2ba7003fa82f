package prompt

import (
	"regexp"
	"strings"
)

// detectRegex recognizes a wider set of prompts than FormatCopyText strips,
// including IPython input and continuation markers.
var detectRegex = regexp.MustCompile(`^(>>> |\.\.\. |\$ |In \[\d*\]: | {2,5}\.\.\.: | {5,8}: )`)

// HasPrompt reports whether any line of text begins with a known prompt.
func HasPrompt(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if detectRegex.MatchString(line) {
			return true
		}
	}
	return false
}
