package textdust

import "strings"
import "testing"
import "math/rand/v2"
import "unicode/utf8"

func runeMeasure(str string) float64 {
	return float64(utf8.RuneCountInString(str))*10
}

func TestWrapLines(t *testing.T) {
	lines := WrapLines("aa bb cc", 60, runeMeasure)
	if len(lines) != 2 || lines[0] != "aa bb" || lines[1] != "cc" {
		t.Fatalf("unexpected lines %q", lines)
	}

	lines = WrapLines("Hi", 60, runeMeasure)
	if len(lines) != 1 || lines[0] != "Hi" { t.Fatalf("unexpected lines %q", lines) }

	lines = WrapLines("", 60, runeMeasure)
	if len(lines) != 0 { t.Fatalf("expected no lines, got %q", lines) }

	lines = WrapLines("word", 0, runeMeasure)
	if len(lines) != 1 || lines[0] != "word" { t.Fatalf("unexpected lines %q", lines) }
}

func TestWrapLinesOversizedWord(t *testing.T) {
	lines := WrapLines("abcdefghij k", 50, runeMeasure)
	if len(lines) != 2 { t.Fatalf("expected 2 lines, got %q", lines) }
	if lines[0] != "abcdefghij" { t.Fatalf("expected unsplit oversized word, got %q", lines[0]) }
	if lines[1] != "k" { t.Fatalf("expected \"k\", got %q", lines[1]) }

	lines = WrapLines("a abcdefghij", 50, runeMeasure)
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "abcdefghij" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestWrapLinesGreedy(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 200; i++ {
		words := make([]string, 1 + rng.IntN(24))
		for j := range words {
			words[j] = strings.Repeat("x", 1 + rng.IntN(12))
		}
		text := strings.Join(words, " ")
		maxWidth := float64(20 + rng.IntN(200))

		lines := WrapLines(text, maxWidth, runeMeasure)
		if strings.Join(lines, " ") != text {
			t.Fatalf("lines %q don't reconstruct %q", lines, text)
		}

		for j, line := range lines {
			if runeMeasure(line) > maxWidth && strings.Contains(line, " ") {
				t.Fatalf("line %q exceeds max width %g", line, maxWidth)
			}
			if j == len(lines) - 1 { continue }

			// the first word of the next line must not fit
			nextWord, _, _ := strings.Cut(lines[j + 1], " ")
			if runeMeasure(line + " " + nextWord + " ") <= maxWidth {
				t.Fatalf("line %q could have taken %q (max width %g)", line, nextWord, maxWidth)
			}
		}
	}
}

func TestWrapLinesWithFont(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetFont(testFont)
	renderer.SetSize(100)

	const maxWidth = 640
	text := "Hello How are you"
	lines := WrapLines(text, maxWidth, renderer.Measure)
	if len(lines) < 2 { t.Fatalf("expected text to wrap, got %q", lines) }
	for _, line := range lines {
		if renderer.Measure(line) > maxWidth && strings.Contains(line, " ") {
			t.Fatalf("line %q exceeds max width", line)
		}
	}

	if doesNotPanic(func() { WrapLines("a", 10, nil) }) {
		t.Fatal("expected nil measure to panic")
	}
}
