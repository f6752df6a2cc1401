package narrative

// NarrativeError represents an error in the narrative service
type NarrativeError string

// Error returns the error message
func (e NarrativeError) Error() string {
	return string(e)
}

// Common errors
const (
	// ErrNilConfig is returned when a nil config is provided
	ErrNilConfig NarrativeError = "config cannot be nil"

	// ErrNilStream is returned when no random stream is provided
	ErrNilStream NarrativeError = "random stream cannot be nil"

	// ErrInvalidBreadth is returned when the lexicon breadth is not positive
	ErrInvalidBreadth NarrativeError = "lexicon breadth must be at least 1"

	// ErrInvalidBias is returned when the assist bias is outside [0, 1]
	ErrInvalidBias NarrativeError = "assist bias must be between 0 and 1"
)
