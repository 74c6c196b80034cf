// ABOUTME: Speech collaborator facade over the text-to-speech client
package repository

import (
	"context"
	"io"

	"news-remix/driver"
)

type speechRepository struct {
	client *driver.SpeechClient
}

// NewSpeechRepository creates a SpeechRepository over the speech client.
func NewSpeechRepository(client *driver.SpeechClient) SpeechRepository {
	return &speechRepository{client: client}
}

func (r *speechRepository) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	return r.client.Synthesize(ctx, text)
}

func (r *speechRepository) SynthesizeBytes(ctx context.Context, text string) ([]byte, error) {
	return r.client.SynthesizeBytes(ctx, text)
}
