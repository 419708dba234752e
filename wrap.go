package textdust

import "strings"

// WrapLines splits the given text into lines whose measured width
// doesn't exceed maxWidth, using a greedy word wrap. Words are
// separated by single spaces and never split, so a word wider than
// maxWidth will overflow the bound on its own line.
//
// Candidate lines are measured with a trailing space, but committed
// lines don't include it. Empty text results in no lines.
func WrapLines(text string, maxWidth float64, measure func(string) float64) []string {
	if text == "" { return nil }
	if measure == nil { panic("can't wrap lines with nil measure function") }

	var lines []string
	var line strings.Builder
	for _, word := range strings.Split(text, " ") {
		candidate := line.String() + word + " "
		if line.Len() > 0 && measure(candidate) > maxWidth {
			lines = append(lines, strings.TrimSuffix(line.String(), " "))
			line.Reset()
			line.WriteString(word)
			line.WriteByte(' ')
		} else {
			line.Reset()
			line.WriteString(candidate)
		}
	}

	// flush last line
	return append(lines, strings.TrimSuffix(line.String(), " "))
}
