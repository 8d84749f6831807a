package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"ai-medtutor-be/internal/entity"
)

const testFallback = "You are a senior thoracic surgery consultant providing medical education."

func TestBuildEmbedsInstructionAndQuery(t *testing.T) {
	c := NewComposer("You are a thoracic tutor.", testFallback, "what is VATS", nil)
	got := c.Build()

	if !strings.HasPrefix(got, "You are a thoracic tutor. ") {
		t.Errorf("Build() does not start with instruction template: %q", got[:40])
	}
	if !strings.Contains(got, `A medical student/resident asked: "what is VATS".`) {
		t.Errorf("Build() missing embedded query")
	}
	if strings.Contains(got, "Relevant educational content") {
		t.Errorf("Build() includes content block with no matches")
	}
}

func TestBuildFallbackPersona(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
	}{
		{name: "empty template", instruction: ""},
		{name: "whitespace template", instruction: "  \n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComposer(tt.instruction, testFallback, "q", nil)
			if got := c.Build(); !strings.HasPrefix(got, testFallback) {
				t.Errorf("Build() did not fall back to default persona")
			}
		})
	}
}

func TestBuildContentBlock(t *testing.T) {
	longBody := strings.Repeat("x", 300)
	matches := []entity.ContentItem{
		{Title: "Chest Tube Guide", ContentType: entity.ContentTypeText, Body: longBody},
		{Title: "VATS Walkthrough", ContentType: entity.ContentTypeVideo, Description: "Narrated lobectomy recording"},
		{Title: "Anatomy Atlas", ContentType: entity.ContentTypePdf},
	}

	got := NewComposer("Tutor.", testFallback, "chest tube", matches).Build()

	if !strings.Contains(got, "Relevant educational content from the library:") {
		t.Fatalf("Build() missing content block header")
	}
	if !strings.Contains(got, "- Chest Tube Guide: "+longBody[:200]+"...") {
		t.Errorf("Build() text item not truncated to 200 chars with ellipsis")
	}
	if strings.Contains(got, longBody[:201]) {
		t.Errorf("Build() leaked more than 200 chars of body")
	}
	if !strings.Contains(got, "- VATS Walkthrough: Narrated lobectomy recording") {
		t.Errorf("Build() media item should use its description")
	}
	if !strings.Contains(got, "- Anatomy Atlas: Media content available") {
		t.Errorf("Build() media item without description should use placeholder")
	}
}

func TestBuildMultiByteBodyStaysValid(t *testing.T) {
	// 200 characters of multi-byte runes; a byte slice would cut one in half.
	longBody := strings.Repeat("é", 250)
	matches := []entity.ContentItem{
		{Title: "Accents", ContentType: entity.ContentTypeText, Body: longBody},
	}
	got := NewComposer("Tutor.", testFallback, "q", matches).Build()

	if !utf8.ValidString(got) {
		t.Fatalf("Build() produced invalid UTF-8")
	}
	if !strings.Contains(got, "- Accents: "+strings.Repeat("é", 200)+"...") {
		t.Errorf("Build() should excerpt 200 characters, not 200 bytes")
	}
}

func TestBuildShortTextBody(t *testing.T) {
	matches := []entity.ContentItem{
		{Title: "Note", ContentType: entity.ContentTypeText, Body: "short body"},
	}
	got := NewComposer("Tutor.", testFallback, "q", matches).Build()
	if !strings.Contains(got, "- Note: short body...") {
		t.Errorf("Build() short text body should be quoted whole with ellipsis")
	}
}
