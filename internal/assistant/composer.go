package assistant

import (
	"context"

	"github.com/BerylCAtieno/network-navigator/internal/message"
	"github.com/BerylCAtieno/network-navigator/internal/models"
	"go.uber.org/zap"
)

// Writer produces an outreach message from an external model.
type Writer interface {
	Write(ctx context.Context, req message.Request) (string, error)
}

const (
	SourceGemini   = "gemini"
	SourceTemplate = "template"
	SourceFallback = "fallback"
)

type Result struct {
	Message   string `json:"message"`
	Source    string `json:"source"`
	Tone      string `json:"tone"`
	WordCount int    `json:"wordCount"`
}

type Composer struct {
	generator *message.Generator
	writer    Writer
	logger    *zap.Logger
}

// NewComposer wires the template generator with an optional model writer.
// writer may be nil.
func NewComposer(generator *message.Generator, writer Writer, logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{generator: generator, writer: writer, logger: logger}
}

func (c *Composer) WriterConfigured() bool {
	return c.writer != nil
}

func (c *Composer) Compose(ctx context.Context, req message.Request, aiModel string) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	req = req.Normalized()

	if aiModel == models.AIModelGemini && c.writer != nil {
		msg, err := c.writer.Write(ctx, req)
		if err == nil {
			return newResult(msg, SourceGemini, req.Tone), nil
		}
		c.logger.Warn("model generation failed, using templates", zap.Error(err))
	}

	msg, recovered := c.generator.SafeGenerate(req)
	if recovered {
		c.logger.Error("template generation panicked, using fixed message", zap.String("tone", string(req.Tone)))
		return newResult(msg, SourceFallback, req.Tone), nil
	}

	c.logger.Debug("generated message",
		zap.String("tone", string(req.Tone)),
		zap.Int("words", message.CountWords(msg)))

	return newResult(msg, SourceTemplate, req.Tone), nil
}

func (c *Composer) Variations(ctx context.Context, req message.Request, aiModel string, count int) ([]Result, error) {
	if count <= 0 {
		count = 3
	}
	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		res, err := c.Compose(ctx, req, aiModel)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func newResult(msg, source string, tone message.Tone) Result {
	return Result{
		Message:   msg,
		Source:    source,
		Tone:      string(tone),
		WordCount: message.CountWords(msg),
	}
}
