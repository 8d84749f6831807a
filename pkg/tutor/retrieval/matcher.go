package retrieval

import (
	"strings"

	"ai-medtutor-be/internal/entity"
)

// Match selects the reference items relevant to a free-text learner query.
//
// The lowercased query is split on whitespace, and an item is relevant when
// any term appears as a substring of its title, description or category, or
// when the whole query contains one of the item's tags. Term-wise matching
// keeps multi-word utterances useful: "pneumothorax protocol" still hits an
// item titled "Pneumothorax Management". The tag check runs tag-in-query,
// not query-in-tag, so an item tagged "chest tube" matches a longer
// utterance that mentions it.
//
// Corpus order is preserved; there is no ranking. Capping the result is the
// caller's concern.
func Match(query string, corpus []entity.ContentItem) []entity.ContentItem {
	terms := strings.ToLower(strings.TrimSpace(query))
	if terms == "" {
		// A blank query would substring-match every item.
		return nil
	}
	tokens := strings.Fields(terms)

	var matched []entity.ContentItem
	for _, item := range corpus {
		if isRelevant(terms, tokens, item) {
			matched = append(matched, item)
		}
	}
	return matched
}

func isRelevant(terms string, tokens []string, item entity.ContentItem) bool {
	fields := []string{
		strings.ToLower(item.Title),
		strings.ToLower(item.Description),
		strings.ToLower(item.Category),
	}
	for _, field := range fields {
		if field == "" {
			continue
		}
		for _, token := range tokens {
			if strings.Contains(field, token) {
				return true
			}
		}
	}

	for _, tag := range item.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			// An empty tag would trivially match any query.
			continue
		}
		if strings.Contains(terms, tag) {
			return true
		}
	}
	return false
}
