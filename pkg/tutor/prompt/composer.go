package prompt

import (
	"fmt"
	"strings"

	"ai-medtutor-be/internal/entity"
)

// bodyExcerptLen caps how much of a text item's body is quoted in the prompt.
const bodyExcerptLen = 200

// mediaPlaceholder stands in for non-text items with no description.
const mediaPlaceholder = "Media content available"

// Composer assembles a single generation request from the tutor persona,
// the learner's spoken question, and the matched reference content.
type Composer struct {
	instruction string
	query       string
	matches     []entity.ContentItem
}

// NewComposer creates a composer. A blank instruction template is replaced
// by the fallback persona; this is policy, not an error.
func NewComposer(instruction, fallback, query string, matches []entity.ContentItem) *Composer {
	if strings.TrimSpace(instruction) == "" {
		instruction = fallback
	}
	return &Composer{
		instruction: instruction,
		query:       query,
		matches:     matches,
	}
}

// Build produces the full prompt text. It only builds text; no side effects.
func (c *Composer) Build() string {
	var prompt strings.Builder

	c.writeInstruction(&prompt)
	c.writeQuery(&prompt)
	c.writeGuidelines(&prompt)
	c.writeRelevantContent(&prompt)

	return prompt.String()
}

func (c *Composer) writeInstruction(prompt *strings.Builder) {
	prompt.WriteString(c.instruction)
	prompt.WriteString(" ")
}

func (c *Composer) writeQuery(prompt *strings.Builder) {
	fmt.Fprintf(prompt, "A medical student/resident asked: %q. \n\n", c.query)
}

func (c *Composer) writeGuidelines(prompt *strings.Builder) {
	prompt.WriteString("Provide a comprehensive, educational response that:\n")
	prompt.WriteString("1. Directly answers their question\n")
	prompt.WriteString("2. Includes relevant clinical guidelines (NICE, BTS, ISCP)\n")
	prompt.WriteString("3. Provides evidence-based information\n")
	prompt.WriteString("4. Uses appropriate medical terminology\n")
	prompt.WriteString("5. Includes practical clinical pearls\n")
	prompt.WriteString("6. References the provided educational content when relevant\n")
	prompt.WriteString("7. Keeps the tone professional but approachable\n\n")
	prompt.WriteString("Focus on thoracic surgery topics including emergency procedures, ")
	prompt.WriteString("VATS techniques, lung cancer management, chest trauma, and post-operative care.")
}

func (c *Composer) writeRelevantContent(prompt *strings.Builder) {
	if len(c.matches) == 0 {
		return
	}

	prompt.WriteString("\n\nRelevant educational content from the library:\n")
	for _, item := range c.matches {
		fmt.Fprintf(prompt, "- %s: %s\n", item.Title, itemSnippet(item))
	}
}

func itemSnippet(item entity.ContentItem) string {
	if item.ContentType == entity.ContentTypeText {
		body := item.Body
		// Excerpt counts characters, not bytes; never split a rune.
		if runes := []rune(body); len(runes) > bodyExcerptLen {
			body = string(runes[:bodyExcerptLen])
		}
		return body + "..."
	}
	if item.Description != "" {
		return item.Description
	}
	return mediaPlaceholder
}
