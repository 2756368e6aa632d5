package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/analytics"
	"github.com/BerylCAtieno/network-navigator/internal/assistant"
	"github.com/BerylCAtieno/network-navigator/internal/message"
	"github.com/BerylCAtieno/network-navigator/internal/models"
	"github.com/BerylCAtieno/network-navigator/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	composer *assistant.Composer
	store    *store.Store
	logger   *zap.Logger
	timeout  time.Duration
	now      func() time.Time
}

type HandlerConfig struct {
	Composer *assistant.Composer
	Store    *store.Store
	Logger   *zap.Logger
	// Timeout bounds a single generation request. Zero means 20s.
	Timeout time.Duration
	Now     func() time.Time
}

func NewHandler(cfg HandlerConfig) *Handler {
	h := &Handler{
		composer: cfg.Composer,
		store:    cfg.Store,
		logger:   cfg.Logger,
		timeout:  cfg.Timeout,
		now:      cfg.Now,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.timeout == 0 {
		h.timeout = 20 * time.Second
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

// RequestLoggingMiddleware logs every request once it has been served.
func RequestLoggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("request failed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request served", fields...)
		}
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *Handler) settings() models.Settings {
	settings, err := h.store.Settings()
	if err != nil {
		h.logger.Warn("failed to read settings, using defaults", zap.Error(err))
	}
	return settings
}

// resolveTone prefers the request's tone and falls back to the saved setting.
func resolveTone(requested string, settings models.Settings) string {
	if requested != "" {
		return requested
	}
	return settings.MessageTone
}

func (h *Handler) GenerateMessage(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings := h.settings()
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	result, err := h.composer.Compose(ctx, req.toMessageRequest(resolveTone(req.Tone, settings)), settings.AIModel)
	if err != nil {
		h.sendError(c, err)
		return
	}

	h.logger.Info("message generated",
		zap.String("source", result.Source),
		zap.String("tone", result.Tone),
		zap.Int("words", result.WordCount))

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GenerateVariations(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Count > 10 {
		h.sendErrorResponse(c, http.StatusBadRequest, "count must be at most 10")
		return
	}

	settings := h.settings()
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	results, err := h.composer.Variations(ctx, req.toMessageRequest(resolveTone(req.Tone, settings)), settings.AIModel, req.Count)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, VariationsResponse{Variations: results})
}

func (h *Handler) SaveMessage(c *gin.Context) {
	var req store.GeneratedMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.store.SaveGeneratedMessage(req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.view(contact))
}

func (h *Handler) analyzer() *analytics.Analyzer {
	return analytics.NewAnalyzer(analytics.DefaultConfig(), h.now())
}

func (h *Handler) view(contact models.Contact) ContactView {
	a := h.analyzer()
	v := ContactView{Contact: contact, NeedsFollowUp: a.NeedsFollowUp(contact)}
	if days, ok := a.DaysSinceContact(contact); ok {
		v.DaysSinceContact = &days
	}
	return v
}

func (h *Handler) ListContacts(c *gin.Context) {
	warmth := models.WarmthLevel(c.Query("warmth"))
	if warmth != "" && !warmth.IsValid() {
		h.sendErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("unknown warmth level %q", warmth))
		return
	}

	contacts := h.store.List(store.Filter{Tag: c.Query("tag"), Warmth: warmth})
	views := make([]ContactView, 0, len(contacts))
	for _, contact := range contacts {
		views = append(views, h.view(contact))
	}

	c.JSON(http.StatusOK, ContactsResponse{Contacts: views, Count: len(views)})
}

func (h *Handler) GetContact(c *gin.Context) {
	contact, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(contact))
}

func (h *Handler) CreateContact(c *gin.Context) {
	var in store.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.store.Create(in)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.view(contact))
}

func (h *Handler) UpdateContact(c *gin.Context) {
	var in store.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.store.Update(c.Param("id"), in)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(contact))
}

func (h *Handler) DeleteContact(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		h.sendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ClearContacts(c *gin.Context) {
	if err := h.store.Clear(); err != nil {
		h.sendError(c, err)
		return
	}
	h.logger.Info("all contacts cleared")
	c.Status(http.StatusNoContent)
}

func (h *Handler) AddInteraction(c *gin.Context) {
	var req InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	interaction, err := h.store.AddInteraction(c.Param("id"), req.Type, req.Notes)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interaction)
}

func (h *Handler) ListTags(c *gin.Context) {
	tags := h.store.Tags()
	if tags == nil {
		tags = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func (h *Handler) Analytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer().Report(h.store.List(store.Filter{})))
}

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.store.Settings()
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	settings := h.settings()
	if err := c.ShouldBindJSON(&settings); err != nil {
		h.sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.SaveSettings(settings); err != nil {
		h.sendError(c, err)
		return
	}

	saved, err := h.store.Settings()
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) Export(c *gin.Context) {
	backup := h.store.Export()
	filename := fmt.Sprintf("network-navigator-backup-%s.json", h.now().UTC().Format(time.DateOnly))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.IndentedJSON(http.StatusOK, backup)
}

func (h *Handler) Import(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.sendErrorResponse(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	backup, err := store.DecodeBackup(body)
	if err != nil {
		h.sendError(c, err)
		return
	}

	n, err := h.store.Import(backup)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, ImportResponse{Imported: n})
}

// ServeDiagnostics reports whether message generation can run.
func (h *Handler) ServeDiagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Diagnose())
}

func (h *Handler) Diagnose() Diagnostics {
	settings := h.settings()

	d := Diagnostics{
		Status:          "ok",
		GeneratorReady:  h.composer != nil,
		AIModel:         settings.AIModel,
		GeminiAvailable: h.composer != nil && h.composer.WriterConfigured(),
		StorePath:       h.store.Path(),
		Contacts:        h.store.Count(),
		Timestamp:       Timestamp(),
	}
	for _, t := range message.Tones {
		d.Tones = append(d.Tones, string(t))
	}

	if !d.GeneratorReady {
		d.Status = "degraded"
		d.Hints = append(d.Hints, "Message generator is not initialized; restart the server.")
	}
	if settings.AIModel == models.AIModelGemini && !d.GeminiAvailable {
		d.Hints = append(d.Hints, "Gemini is selected but GEMINI_API_KEY is not set; template messages will be used.")
	}
	return d
}

func (h *Handler) sendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, message.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidBackup):
		h.sendErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		h.sendErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		_ = c.Error(err)
		h.sendErrorResponse(c, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) sendErrorResponse(c *gin.Context, status int, msg string) {
	h.logger.Debug("sending error response", zap.Int("status", status), zap.String("message", msg))
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}
