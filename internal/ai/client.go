// Package ai wraps the external chat-completions provider behind a narrow
// client interface: one system prompt, one user prompt, an optional image,
// one text reply per call. There is no streaming, no multi-turn state and
// no retry; a session id is carried for log grouping only.
package ai

import "context"

// Request is a single-turn prompt for the chat provider.
type Request struct {
	// SessionID groups related calls in logs; it carries no provider state.
	SessionID string
	// System frames the model (e.g. as a fashion stylist).
	System string
	// Prompt is the user instruction text.
	Prompt string
	// ImageBase64 optionally attaches an image, supplied as the base64
	// payload (with or without a data-URL prefix).
	ImageBase64 string
}

// Client is the surface the services need from the chat provider.
// Implementations must be safe for concurrent use.
type Client interface {
	// Complete sends one prompt and returns the model's text reply.
	Complete(ctx context.Context, req Request) (string, error)
}
