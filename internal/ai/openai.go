package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog/log"
)

// maxCompletionTokens caps reply length; outfit suggestions are a few
// hundred tokens, so this leaves generous headroom.
const maxCompletionTokens = 4096

// OpenAI is a Client backed by an OpenAI-compatible chat-completions API.
type OpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI builds a client for the given credentials. An empty baseURL
// uses the provider default. Construction never touches the network; a
// missing or invalid key surfaces as an error on the first Complete call.
func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAI{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Complete sends one prompt (plus optional image) and returns the first
// choice's text, trimmed.
func (c *OpenAI) Complete(ctx context.Context, req Request) (string, error) {
	if req.Prompt == "" {
		return "", errors.New("empty prompt")
	}

	params := completionParams(c.model, req)
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	log.Debug().
		Str("session_id", req.SessionID).
		Str("model", resp.Model).
		Int("reply_len", len(reply)).
		Msg("chat completion")
	return reply, nil
}

// completionParams shapes the single-turn request: a system message framing
// the model, then a user message that is either plain text or a text part
// plus an image part when an image is attached.
func completionParams(model string, req Request) openai.ChatCompletionNewParams {
	user := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfString: openai.String(req.Prompt),
		},
	}
	if req.ImageBase64 != "" {
		user.Content = openai.ChatCompletionUserMessageParamContentUnion{
			OfArrayOfContentParts: []openai.ChatCompletionContentPartUnionParam{
				{OfText: &openai.ChatCompletionContentPartTextParam{
					Text: req.Prompt,
				}},
				{OfImageURL: &openai.ChatCompletionContentPartImageParam{
					ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
						URL:    imageDataURL(req.ImageBase64),
						Detail: "auto",
					},
				}},
			},
		}
	}

	return openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(model),
		MaxTokens: openai.Int(maxCompletionTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(req.System),
					},
				},
			},
			{OfUser: &user},
		},
	}
}

// imageDataURL wraps a raw base64 payload as a data URL for the image_url
// content part. Payloads that already carry a data: scheme pass through.
func imageDataURL(imageBase64 string) string {
	if strings.HasPrefix(imageBase64, "data:") {
		return imageBase64
	}
	return "data:image/jpeg;base64," + imageBase64
}
