// ABOUTME: Text-to-speech client streaming MPEG audio from an ElevenLabs-style API
// ABOUTME: Returns the raw stream so handlers can pipe it through without buffering
package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"news-remix/config"
	"news-remix/domain"
)

// SpeechClient synthesizes speech for rewritten articles.
type SpeechClient struct {
	httpClient *http.Client
	cfg        config.SpeechConfig
	logger     *slog.Logger
}

func NewSpeechClient(httpClient *http.Client, cfg config.SpeechConfig, logger *slog.Logger) *SpeechClient {
	return &SpeechClient{
		httpClient: httpClient,
		cfg:        cfg,
		logger:     logger,
	}
}

type speechRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize converts text to speech and returns the audio stream. The
// caller owns the returned ReadCloser and must close it.
func (c *SpeechClient) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	reqBody := speechRequest{
		Text:    text,
		ModelID: c.cfg.Model,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("request marshal failed: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s/stream", c.cfg.BaseURL, c.cfg.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error("response body close failed", "error", cerr)
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, domain.ErrRateLimited
		}
		return nil, fmt.Errorf("speech API returned status %d: %s: %w",
			resp.StatusCode, string(body), domain.ErrUpstream)
	}

	return resp.Body, nil
}

// SynthesizeBytes buffers a full synthesis result, used when audio is
// persisted instead of streamed.
func (c *SpeechClient) SynthesizeBytes(ctx context.Context, text string) ([]byte, error) {
	stream, err := c.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			c.logger.Error("audio stream close failed", "error", cerr)
		}
	}()

	audio, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("audio read failed: %w", err)
	}
	return audio, nil
}
