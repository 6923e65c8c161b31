package chunk

import (
	"regexp"
	"strings"
	"testing"
)

func TestSplitRespectsParagraphs(t *testing.T) {
	text := "Paragraph one has enough words to trigger splitting and it should respect paragraph boundaries by placing this entire thought together before moving on to the next area.\n\n" +
		"Paragraph two follows with its own set of sentences and should land in a separate chunk to demonstrate newline awareness by the splitter and keep ideas grouped."

	chunks := Split(text, DefaultOptions())
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if !strings.Contains(chunks[0], "Paragraph one") {
		t.Errorf("chunk 0 should hold paragraph one: %q", chunks[0])
	}
	if !strings.Contains(chunks[1], "Paragraph two") {
		t.Errorf("chunk 1 should hold paragraph two: %q", chunks[1])
	}
}

func TestChunksStayWithinBounds(t *testing.T) {
	sentence := "This sentence contains many words to test the splitter behavior across boundaries and maintain ranges."
	text := strings.TrimSpace(strings.Repeat(sentence+" ", 7))

	opts := DefaultOptions()
	chunks := Split(text, opts)

	minWords := int(opts.MinSeconds * opts.BaseWordsPerSecond)
	maxWords := int(opts.MaxSeconds * opts.BaseWordsPerSecond)
	for i, c := range chunks {
		words := CountWords(c)
		if words < minWords || words > maxWords {
			t.Errorf("chunk %d has %d words, want %d..%d: %q", i, words, minWords, maxWords, c)
		}
	}
}

func TestAvoidsWeakEndings(t *testing.T) {
	text := "This is how to. " +
		"We continue the explanation with more detail to illustrate the concept clearly. " +
		"Ending cleanly now with plenty of buffer words to keep the final chunk healthy."

	chunks := Split(text, Options{
		TargetSeconds:      7.0,
		MinSeconds:         4.0,
		MaxSeconds:         20.0,
		BaseWordsPerSecond: 1.0,
	})
	if strings.HasSuffix(strings.ToLower(strings.TrimSpace(chunks[0])), "to.") {
		t.Errorf("chunk 0 ends on a weak word: %q", chunks[0])
	}
}

func TestWeakEndingExtendsChunk(t *testing.T) {
	chunks := Split("I want to. Go now.", Options{
		TargetSeconds:      2.0,
		MinSeconds:         1.0,
		MaxSeconds:         10.0,
		BaseWordsPerSecond: 1.0,
	})
	if len(chunks) != 1 {
		t.Fatalf("weak ending should pull the next sentence in, got %v", chunks)
	}
}

func TestAvoidsWeakStarts(t *testing.T) {
	text := "The first sentence wraps up here. " +
		"And then another starts with a connector to continue the story and set up the next idea. " +
		"Final ending waits with additional words for balance and smoother pacing."

	chunks := Split(text, Options{
		TargetSeconds:      8.0,
		MinSeconds:         5.0,
		MaxSeconds:         22.0,
		BaseWordsPerSecond: 1.0,
	})
	wordAt := regexp.MustCompile(`\b[\w']+\b`)
	for _, c := range chunks[1:] {
		first := wordAt.FindString(c)
		if first != "" && WeakStartWords[strings.ToLower(first)] {
			t.Errorf("chunk starts on a weak word: %q", c)
		}
	}
}

func TestBracketTagsNotSplit(t *testing.T) {
	text := "Hello [laugh] there friend; this keeps going to ensure length; continuing more words to reach a limit. " +
		"Another sentence follows to close the idea cleanly."

	chunks := Split(text, Options{
		TargetSeconds:      8.0,
		MinSeconds:         5.0,
		MaxSeconds:         16.0,
		BaseWordsPerSecond: 2.0,
	})
	openTail := regexp.MustCompile(`\[[^\]]*$`)
	closeHead := regexp.MustCompile(`^[^\[]*\]`)
	for _, c := range chunks {
		if openTail.MatchString(c) || closeHead.MatchString(c) {
			t.Errorf("bracket token split across chunks: %q", c)
		}
	}
}

func TestSoftBoundariesForLongSentences(t *testing.T) {
	text := "This is a long sentence; it keeps running with many clauses; another clause — and continues to ensure we need splits for readability; ending eventually."

	chunks := Split(text, Options{
		TargetSeconds:      5.0,
		MinSeconds:         3.0,
		MaxSeconds:         10.0,
		BaseWordsPerSecond: 1.5,
	})
	if len(chunks) < 2 {
		t.Fatalf("expected the long sentence to be split, got %v", chunks)
	}
	for _, c := range chunks {
		if strings.TrimSpace(c) == "" {
			t.Error("empty chunk produced")
		}
	}
}

func TestOverlapSentences(t *testing.T) {
	text := "Alpha beta gamma delta one. Epsilon zeta eta theta two. Iota kappa lambda mu three. Nu xi omicron pi four."

	chunks := Split(text, Options{
		TargetSeconds:      10.0,
		MinSeconds:         2.0,
		MaxSeconds:         12.0,
		BaseWordsPerSecond: 1.0,
		OverlapSentences:   1,
	})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %v", chunks)
	}
	if !strings.HasPrefix(chunks[1], "Epsilon zeta eta theta two.") {
		t.Errorf("chunk 1 should repeat the previous sentence for overlap: %q", chunks[1])
	}
}

func TestCountWordsIgnoresBracketTokens(t *testing.T) {
	if got := CountWords("Hello [laugh loudly] world"); got != 2 {
		t.Errorf("CountWords = %d, want 2", got)
	}
	if got := CountWords("it's one"); got != 2 {
		t.Errorf("CountWords with apostrophe = %d, want 2", got)
	}
}

func TestEmptyInput(t *testing.T) {
	if chunks := Split("", DefaultOptions()); chunks != nil {
		t.Errorf("empty input should produce no chunks, got %v", chunks)
	}
}
