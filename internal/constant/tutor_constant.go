package constant

const (
	// DefaultTutorPersona is the fallback instruction when neither the
	// configured persona nor an active feedback prompt is set.
	DefaultTutorPersona = "You are a senior thoracic surgery consultant providing medical education."

	// GenerationFallbackMessage is shown to the learner on any generation
	// failure. The turn is never retried automatically.
	GenerationFallbackMessage = "I apologize, but I encountered an error processing your question. Please try again."

	// GenerationMaxTokens caps the tutor response length.
	GenerationMaxTokens = 600

	// ContentIdPrefix mints the opaque catalog identifiers.
	ContentIdPrefix = "content_"
)
