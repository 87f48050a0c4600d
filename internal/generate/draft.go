package generate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PostDraft is the structured form a post-generation reply is expected to
// take.
type PostDraft struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	TagNames []string `json:"tagNames"`
}

// TagDraft is the structured form a tag-generation reply is expected to
// take.
type TagDraft struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostPrompt asks for a short blog post draft constrained to the current
// tag catalog.
func PostPrompt(tagNames []string) string {
	catalog := strings.Join(tagNames, ", ")
	if catalog == "" {
		catalog = "none"
	}
	return fmt.Sprintf(`Generate a short blog post with a title and content about a random interesting topic.
Available tags: %s
Format it as JSON with 'title', 'content', and 'tagNames' fields (tagNames should be an array of 1-3 relevant tag names from the available tags list, or empty array if none match). Keep it under 200 words.`, catalog)
}

// TagPrompt asks for a single new tag that is not already in the catalog.
func TagPrompt(existing []string) string {
	catalog := strings.Join(existing, ", ")
	if catalog == "" {
		catalog = "none"
	}
	return fmt.Sprintf(`Suggest one new blog tag that is not already in this list: %s
Format it as JSON with 'name' (a short human-readable label) and 'slug' (lowercase letters, digits and hyphens only) fields.`, catalog)
}

// ExtractJSON returns the widest brace-delimited span of text, mirroring a
// greedy first-{ to last-} match. Models often wrap JSON in prose or code
// fences, so this is more reliable than decoding the raw reply.
func ExtractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ParsePostDraft decodes the model reply. When no parseable JSON is found
// the raw text is kept as the draft body instead of failing the request.
func ParsePostDraft(text string) (PostDraft, bool) {
	if raw, ok := ExtractJSON(text); ok {
		var draft PostDraft
		if err := json.Unmarshal([]byte(raw), &draft); err == nil {
			return draft, true
		}
	}
	return PostDraft{Title: "AI Generated Post", Content: text}, false
}

// ParseTagDraft decodes the model reply. Tag drafts have no raw-text
// fallback; an unparseable reply is reported as such.
func ParseTagDraft(text string) (TagDraft, bool) {
	raw, ok := ExtractJSON(text)
	if !ok {
		return TagDraft{}, false
	}
	var draft TagDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return TagDraft{}, false
	}
	return draft, draft.Name != "" && draft.Slug != ""
}
