package script

// Item is a narration script as authored, before preparation. Content may
// carry bracket tags ([tone: calm], [pause:1.5s]) and <voice:ID> directives.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Style       string `json:"style"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Samples returns the bundled demo scripts. Each one exercises a different
// part of the preparation flow.
func Samples() []Item {
	return []Item{
		{
			ID:          "evening-read",
			Title:       "The Lighthouse Keeper",
			Style:       "audiobook",
			Description: "Narrative prose with dialogue, for pause annotation demos",
			Content: "The lighthouse keeper climbed the spiral stairs, lantern in hand; the storm was close now.\n\n" +
				"\"Hold fast,\" he said. \"The light must not go out tonight.\"\n\n" +
				"[tone: weary] Far below, the waves broke against the rocks - again, and again, and again.",
		},
		{
			ID:          "product-spot",
			Title:       "Thirty Second Spot",
			Style:       "ad",
			Description: "Ad copy with prices, for currency normalization demos",
			Content: "Introducing the new AquaPure filter: cleaner water, every day.\n\n" +
				"Now just $49.99 - that's $25 off the regular price. However, this offer ends Sunday.",
		},
		{
			ID:          "two-hosts",
			Title:       "Morning Show Open",
			Style:       "youtube",
			Description: "Two-speaker script with voice directives",
			Content: "<voice:clay> Good morning everyone, and welcome back to the show!\n" +
				"<voice:emily> Today we're covering something special. Actually, make that two things. [pause:0.8s]\n" +
				"<voice:clay> Let's get right into it.",
		},
	}
}

// Find returns the sample with the given id, or nil.
func Find(id string) *Item {
	for _, item := range Samples() {
		if item.ID == id {
			return &item
		}
	}
	return nil
}
