// ABOUTME: Core article model, processing pipeline states and category handling
// ABOUTME: Pure domain types shared by driver, repository, service and handler layers
package domain

import "time"

// ProcessingStatus tracks an article through the transformation pipeline.
type ProcessingStatus string

const (
	StatusPending        ProcessingStatus = "pending"
	StatusTextCompleted  ProcessingStatus = "text_completed"
	StatusImageCompleted ProcessingStatus = "image_completed"
	StatusAudioCompleted ProcessingStatus = "audio_completed"
	StatusCompleted      ProcessingStatus = "completed"
	StatusError          ProcessingStatus = "error"
)

// next maps each status to the one that follows it in the pipeline.
var next = map[ProcessingStatus]ProcessingStatus{
	StatusPending:        StatusTextCompleted,
	StatusTextCompleted:  StatusImageCompleted,
	StatusImageCompleted: StatusAudioCompleted,
	StatusAudioCompleted: StatusCompleted,
}

// CanTransition reports whether moving from one status to another is a legal
// pipeline step. The pipeline only moves forward; any non-terminal status may
// jump to error. Completed and error are terminal.
func CanTransition(from, to ProcessingStatus) bool {
	if from == StatusCompleted || from == StatusError {
		return false
	}
	if to == StatusError {
		return true
	}
	return next[from] == to
}

// Terminal reports whether no further pipeline steps are possible.
func (s ProcessingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Bias is the political slant injected during rewriting.
type Bias string

const (
	BiasLeft    Bias = "left"
	BiasRight   Bias = "right"
	BiasNeutral Bias = "neutral"
)

// ParseBias validates a bias query value. Empty input means neutral.
func ParseBias(raw string) (Bias, error) {
	switch Bias(raw) {
	case BiasLeft, BiasRight, BiasNeutral:
		return Bias(raw), nil
	case "":
		return BiasNeutral, nil
	default:
		return "", ErrInvalidBias
	}
}

// Article is a stored news article, optionally carrying transformed fields.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`

	// Transformation fields, bias-specific
	OriginalTitle     string           `json:"originalTitle,omitempty"`
	OriginalContent   string           `json:"originalContent,omitempty"`
	Bias              Bias             `json:"politicalBias,omitempty"`
	GeneratedImageURL string           `json:"generatedImageUrl,omitempty"`
	Explanation       string           `json:"explanation,omitempty"`
	AudioData         []byte           `json:"-"`
	IsProcessed       bool             `json:"isProcessed"`
	ProcessingStatus  ProcessingStatus `json:"processingStatus"`
	ProcessingError   string           `json:"processingError,omitempty"`
}

// HasText reports whether there is anything to rewrite.
func (a *Article) HasText() bool {
	return a.Content != "" || a.Description != ""
}

// BodyText returns the rewrite input, falling back to the description
// when the provider supplied no content.
func (a *Article) BodyText() string {
	if a.Content != "" {
		return a.Content
	}
	return a.Description
}
