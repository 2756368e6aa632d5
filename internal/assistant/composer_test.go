package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/BerylCAtieno/network-navigator/internal/message"
	"github.com/BerylCAtieno/network-navigator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	text  string
	err   error
	calls int
}

func (f *fakeWriter) Write(_ context.Context, req message.Request) (string, error) {
	f.calls++
	return f.text, f.err
}

type explodingChooser struct{}

func (explodingChooser) Choose([]string) string { panic("boom") }

func newComposer(t *testing.T, chooser message.Chooser, w Writer) *Composer {
	t.Helper()
	gen, err := message.NewGenerator(message.DefaultPhraseBank(), chooser)
	require.NoError(t, err)
	return NewComposer(gen, w, nil)
}

func TestCompose_RejectsEmptyName(t *testing.T) {
	c := newComposer(t, nil, nil)

	_, err := c.Compose(context.Background(), message.Request{Name: "  "}, models.AIModelSimple)
	assert.ErrorIs(t, err, message.ErrInvalidInput)
}

func TestCompose_Template(t *testing.T) {
	w := &fakeWriter{text: "Hi from the model"}
	c := newComposer(t, nil, w)

	res, err := c.Compose(context.Background(), message.Request{Name: "Dana", Tone: "friendly"}, models.AIModelSimple)
	require.NoError(t, err)

	assert.Equal(t, SourceTemplate, res.Source)
	assert.Equal(t, "friendly", res.Tone)
	assert.Contains(t, res.Message, "Hi Dana,")
	assert.Equal(t, message.CountWords(res.Message), res.WordCount)
	assert.Zero(t, w.calls)
}

func TestCompose_GeminiSuccess(t *testing.T) {
	w := &fakeWriter{text: "Hi Dana,\n\nLovely to meet you."}
	c := newComposer(t, nil, w)

	res, err := c.Compose(context.Background(), message.Request{Name: "Dana"}, models.AIModelGemini)
	require.NoError(t, err)

	assert.Equal(t, SourceGemini, res.Source)
	assert.Equal(t, w.text, res.Message)
}

func TestCompose_GeminiFailureFallsBackToTemplate(t *testing.T) {
	w := &fakeWriter{err: errors.New("quota exceeded")}
	c := newComposer(t, nil, w)

	res, err := c.Compose(context.Background(), message.Request{Name: "Dana"}, models.AIModelGemini)
	require.NoError(t, err)

	assert.Equal(t, 1, w.calls)
	assert.Equal(t, SourceTemplate, res.Source)
	assert.True(t, strings.HasSuffix(res.Message, message.SignOff))
}

func TestCompose_GeminiModeWithoutWriter(t *testing.T) {
	c := newComposer(t, nil, nil)

	res, err := c.Compose(context.Background(), message.Request{Name: "Dana"}, models.AIModelGemini)
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, res.Source)
	assert.False(t, c.WriterConfigured())
}

func TestCompose_PanicUsesFixedMessage(t *testing.T) {
	c := newComposer(t, explodingChooser{}, nil)

	res, err := c.Compose(context.Background(), message.Request{Name: "Dana"}, models.AIModelSimple)
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, message.Personalized(message.Request{Name: "Dana"}), res.Message)
}

func TestVariations(t *testing.T) {
	c := newComposer(t, nil, nil)

	res, err := c.Variations(context.Background(), message.Request{Name: "Dana"}, models.AIModelSimple, 0)
	require.NoError(t, err)
	assert.Len(t, res, 3)

	_, err = c.Variations(context.Background(), message.Request{}, models.AIModelSimple, 2)
	assert.ErrorIs(t, err, message.ErrInvalidInput)
}
