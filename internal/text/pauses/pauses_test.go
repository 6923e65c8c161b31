package pauses

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var pauseTagPattern = regexp.MustCompile(`\[pause:(\d+(?:\.\d+)?)s\]`)

func firstPauseSeconds(t *testing.T, text string) float64 {
	t.Helper()
	m := pauseTagPattern.FindStringSubmatch(text)
	if m == nil {
		t.Fatalf("no pause tag found in %q", text)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		t.Fatalf("bad pause value in %q: %v", text, err)
	}
	return v
}

func eager(style Style) Options {
	opts := DefaultOptions(style)
	opts.TopupOnly = false
	return opts
}

func TestPreservesParalinguisticTags(t *testing.T) {
	text := "Hello [laugh], world! [cough] Then [chuckle] done."
	result := Insert(text, eager(StyleAudiobook))

	for _, tag := range []string{"[laugh]", "[cough]", "[chuckle]"} {
		if !strings.Contains(result, tag) {
			t.Errorf("tag %s missing from %q", tag, result)
		}
	}
}

func TestInsertsPauseAtParagraphBreak(t *testing.T) {
	result := Insert("First line.\n\nSecond line.", eager(StyleAudiobook))
	if !strings.Contains(result, "\n\n[pause:") {
		t.Errorf("no paragraph pause in %q", result)
	}
	if !strings.Contains(result, "\n\n[pause:1.15s]") {
		t.Errorf("unexpected paragraph pause duration in %q", result)
	}
}

func TestInsertsPauseAtSentenceBoundary(t *testing.T) {
	result := Insert("Hello world. Next sentence.", eager(StyleAudiobook))
	if !strings.Contains(result, "world.[pause") {
		t.Errorf("no sentence pause in %q", result)
	}
}

func TestSkipsNearManualPause(t *testing.T) {
	result := Insert("Hello.[pause:0.5s] Next sentence.", eager(StyleAudiobook))

	if got := strings.Count(result, "[pause:"); got != 2 {
		t.Errorf("expected manual plus one final pause, got %d in %q", got, result)
	}
	if strings.Contains(result, "Hello.[pause:0.5s][pause:") {
		t.Errorf("inserted next to a manual pause: %q", result)
	}
}

func TestShorthandManualPauseSuppresses(t *testing.T) {
	result := Insert("Hello.[2s] Next sentence.", eager(StyleAudiobook))
	if strings.Contains(result, "[2s][pause:") || strings.Contains(result, "Hello.[pause") {
		t.Errorf("shorthand manual pause not respected: %q", result)
	}
}

func TestNeverInsertsInsideBracketTokens(t *testing.T) {
	result := Insert("Keep [note: inside, brackets] flowing smoothly.", eager(StyleAudiobook))
	if regexp.MustCompile(`\[[^\]]*\[pause:[^\]]*\][^\]]*\]`).MatchString(result) {
		t.Errorf("pause inserted inside a bracket token: %q", result)
	}
	if !strings.Contains(result, "[note: inside, brackets]") {
		t.Errorf("bracket token mutated: %q", result)
	}
}

func TestSpeedFactorScalesPauses(t *testing.T) {
	fast := eager(StyleAudiobook)
	fast.SpeedFactor = 2.0

	fastPause := firstPauseSeconds(t, Insert("Quick test.", fast))
	normalPause := firstPauseSeconds(t, Insert("Quick test.", eager(StyleAudiobook)))

	if fastPause != normalPause/2 {
		t.Errorf("doubling speed should halve the pause: fast=%v normal=%v", fastPause, normalPause)
	}
}

func TestDiscourseMarkerBump(t *testing.T) {
	result := Insert("First thought. However, this continues.", eager(StyleAudiobook))
	if !strings.Contains(result, "[pause:0.65") {
		t.Errorf("expected 0.55 base plus 0.10 marker bump in %q", result)
	}
}

func TestDiscourseMarkerBumpByStyle(t *testing.T) {
	tests := []struct {
		style    Style
		expected string
	}{
		{StyleYouTube, "[pause:0.45s]"}, // 0.38 + 0.07
		{StyleAd, "[pause:0.3s]"},       // 0.26 + 0.04
	}
	for _, tc := range tests {
		result := Insert("First thought. However, this continues.", eager(tc.style))
		if !strings.Contains(result, tc.expected) {
			t.Errorf("style %s: expected %s in %q", tc.style, tc.expected, result)
		}
	}
}

func TestQuestionMarkBonus(t *testing.T) {
	result := Insert("Really? Yes.", eager(StyleAudiobook))
	if !strings.Contains(result, "[pause:0.62s]") {
		t.Errorf("expected 0.55 + 0.07 question bonus in %q", result)
	}
}

func TestLongSentenceBonus(t *testing.T) {
	long := strings.Repeat("word ", 57) + "end. Next."
	short := "Short one. Next."

	longPause := firstPauseSeconds(t, Insert(long, eager(StyleAudiobook)))
	shortPause := firstPauseSeconds(t, Insert(short, eager(StyleAudiobook)))

	// 58 words caps the bonus: 0.55 + 0.35*0.25.
	if math.Abs(longPause-(0.55+0.0875)) > 0.001 {
		t.Errorf("long sentence pause = %v, want ~0.6375", longPause)
	}
	if shortPause != 0.55 {
		t.Errorf("short sentence pause = %v, want 0.55", shortPause)
	}
}

func TestSpacedDashBoundary(t *testing.T) {
	result := Insert("wait - no rush today.", eager(StyleAudiobook))
	if !strings.Contains(result, "-[pause:0.24s] no") {
		t.Errorf("expected emdash pause after spaced hyphen in %q", result)
	}
}

func TestEmDashWithMarkerBump(t *testing.T) {
	result := Insert("yes—but now.", eager(StyleAudiobook))
	if !strings.Contains(result, "—[pause:0.28s]but") {
		t.Errorf("expected 0.24 + 0.04 bump after em-dash in %q", result)
	}
}

func TestDecimalNumberIsNotBoundary(t *testing.T) {
	result := Insert("Pi is 3.14 exactly.", eager(StyleAudiobook))
	if got := strings.Count(result, "[pause:"); got != 1 {
		t.Errorf("expected only the final sentence pause, got %d in %q", got, result)
	}
}

func TestEllipsisRun(t *testing.T) {
	result := Insert("Wait... done.", eager(StyleAudiobook))
	// Only the final dot of the run ends the sentence.
	if got := strings.Count(result, "[pause:"); got != 2 {
		t.Errorf("expected pauses after the run and the final dot, got %d in %q", got, result)
	}
	if strings.Contains(result, ".[pause:0.55s].") {
		t.Errorf("pause inserted between ellipsis dots: %q", result)
	}
}

func TestOpenQuoteBoundarySkipped(t *testing.T) {
	result := Insert(`He said "." calmly.`, eager(StyleAudiobook))
	if got := strings.Count(result, "[pause:"); got != 1 {
		t.Errorf("dot right after an opening quote should not pause, got %d in %q", got, result)
	}
}

func TestInsertionAdvancesPastClosingQuotes(t *testing.T) {
	result := Insert(`"Stop." Then go.`, eager(StyleAudiobook))
	if !strings.Contains(result, `."[pause:`) {
		t.Errorf("pause should land after the closing quote: %q", result)
	}
}

func TestTopupOnlyScalesNonParagraph(t *testing.T) {
	opts := DefaultOptions(StyleAudiobook)
	result := Insert("Quick test.", opts)

	got := firstPauseSeconds(t, result)
	if math.Abs(got-0.55*0.65) > 0.001 {
		t.Errorf("topup-only pause = %v, want ~%v", got, 0.55*0.65)
	}

	paragraph := Insert("One.\n\nTwo.", opts)
	if !strings.Contains(paragraph, "\n\n[pause:1.15s]") {
		t.Errorf("paragraph pause should not be scaled in topup mode: %q", paragraph)
	}
}

func TestClampToMaxPause(t *testing.T) {
	opts := eager(StyleAudiobook)
	opts.Strength = 10

	result := Insert("One. Two.", opts)
	if !strings.Contains(result, "[pause:1.8s]") {
		t.Errorf("expected clamp to max pause in %q", result)
	}
}

func TestDramaticScalesAudiobook(t *testing.T) {
	dramatic := firstPauseSeconds(t, Insert("Quick test.", eager(StyleDramatic)))
	audiobook := firstPauseSeconds(t, Insert("Quick test.", eager(StyleAudiobook)))

	if math.Abs(dramatic-audiobook*1.35) > 0.001 {
		t.Errorf("dramatic = %v, want audiobook %v x 1.35", dramatic, audiobook)
	}
}

func TestIdempotentNearExistingTags(t *testing.T) {
	text := "First line. More here.\n\nSecond paragraph!"
	once := Insert(text, eager(StyleAudiobook))
	twice := Insert(once, eager(StyleAudiobook))

	if got, want := strings.Count(twice, "[pause:"), strings.Count(once, "[pause:"); got != want {
		t.Errorf("re-annotation added tags: first pass %d, second pass %d\n%q", want, got, twice)
	}
}

func TestEmptyAndTagOnlyInput(t *testing.T) {
	if got := Insert("", eager(StyleAudiobook)); got != "" {
		t.Errorf("empty input changed: %q", got)
	}
	if got := Insert("[laugh]", eager(StyleAudiobook)); got != "[laugh]" {
		t.Errorf("tag-only input changed: %q", got)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name     string
		expected Style
	}{
		{"audiobook", StyleAudiobook},
		{"YouTube", StyleYouTube},
		{"AD", StyleAd},
		{"dramatic", StyleDramatic},
		{"", StyleAudiobook},
		{"unknown", StyleAudiobook},
	}
	for _, tc := range tests {
		if got := ParseStyle(tc.name); got != tc.expected {
			t.Errorf("ParseStyle(%q) = %v, want %v", tc.name, got, tc.expected)
		}
	}
}

func TestStyleTablesOrdering(t *testing.T) {
	for _, b := range BoundaryKinds() {
		ab := StyleAudiobook.BaseDuration(b)
		yt := StyleYouTube.BaseDuration(b)
		ad := StyleAd.BaseDuration(b)
		if !(ab > yt && yt > ad) {
			t.Errorf("boundary %s: expected audiobook > youtube > ad, got %v %v %v", b, ab, yt, ad)
		}
		if got := StyleDramatic.BaseDuration(b); math.Abs(got-ab*1.35) > 1e-9 {
			t.Errorf("boundary %s: dramatic should be audiobook x 1.35, got %v", b, got)
		}
	}
}
