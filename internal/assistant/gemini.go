package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/network-navigator/internal/message"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-2.5-flash-lite"

var errWeakOutput = errors.New("generated text too short or missing greeting")

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string, temperature float32) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(512)

	return &GeminiClient{
		client: client,
		model:  model,
		name:   modelName,
	}, nil
}

func (g *GeminiClient) Close() {
	g.client.Close()
}

func (g *GeminiClient) Name() string {
	return g.name
}

// Write asks Gemini for an outreach message. Weak or empty output is an error
// so callers can fall back to the template engine.
func (g *GeminiClient) Write(ctx context.Context, req message.Request) (string, error) {
	req = req.Normalized()

	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(req)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	return cleanGenerated(text.String())
}

// cleanGenerated rejects unusable output and drops a dangling sentence
// fragment at the end.
func cleanGenerated(text string) (string, error) {
	text = strings.TrimSpace(text)
	if len(text) < 20 || !strings.Contains(strings.ToLower(text), "hi") {
		return "", errWeakOutput
	}

	if strings.HasSuffix(text, message.SignOff) {
		return text, nil
	}

	sentences := strings.Split(text, ".")
	if len(sentences) > 1 {
		if last := strings.TrimSpace(sentences[len(sentences)-1]); len(last) < 10 {
			sentences = sentences[:len(sentences)-1]
		}
		text = strings.Join(sentences, ".") + "."
	}

	return text, nil
}

func buildPrompt(req message.Request) string {
	var details strings.Builder
	details.WriteString(fmt.Sprintf("Recipient name: %s\n", req.Name))
	if req.Role != "" {
		details.WriteString(fmt.Sprintf("Role: %s\n", req.Role))
	}
	if req.Company != "" {
		details.WriteString(fmt.Sprintf("Company: %s\n", req.Company))
	}
	if req.Context != "" {
		details.WriteString(fmt.Sprintf("How we are connected: %s\n", req.Context))
	}
	if req.PersonalInfo != "" {
		details.WriteString(fmt.Sprintf("Something personal about them: %s\n", req.PersonalInfo))
	}

	return fmt.Sprintf(`You write short networking outreach messages. Write ONE message in a %s tone to the person below.

%s
Rules:
- Start with "Hi %s," on its own line followed by a blank line.
- Keep it under %d words.
- Mention the connection context verbatim if one is given.
- End with a soft ask for a brief conversation, then the sign-off exactly as:
%s
- Output only the message, no markdown and no commentary.`,
		req.Tone, details.String(), req.Name, message.WordCap, message.SignOff)
}
