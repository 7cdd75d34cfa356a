// Package engine runs one chat turn end to end: classify the intent,
// compose the prompt, invoke the model once, and record the outcome on
// the session transcript.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Snouball98/my-first-chatbot/internal/chat/composer"
	"github.com/Snouball98/my-first-chatbot/internal/chat/intent"
	"github.com/Snouball98/my-first-chatbot/internal/common/azureai"
	"github.com/Snouball98/my-first-chatbot/internal/common/errors"
	"github.com/Snouball98/my-first-chatbot/internal/common/metrics"
	"github.com/Snouball98/my-first-chatbot/internal/common/observability"
	"github.com/Snouball98/my-first-chatbot/internal/models"
	"github.com/Snouball98/my-first-chatbot/internal/session"
)

// Transcript texts shown to the user when a turn cannot get a model reply.
// These match the chat window wording exactly, emoji included.
const (
	replyErrorPrefix      = "❌ 모델 호출 중 오류: "
	replyModelUnavailable = "❌ 모델 호출 불가 — Azure 클라이언트 초기화 실패"
)

// Logger interface definition
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Invoker is the chat completion dependency. *azureai.Client satisfies it.
type Invoker interface {
	Complete(ctx context.Context, turns []models.Turn, temperature float64, maxTokens int) (*azureai.Completion, error)
}

// Config holds the defaults applied when a request leaves a knob unset.
type Config struct {
	DefaultMode        models.Mode
	DefaultTemperature float64
	DefaultMaxTokens   int
}

// Engine drives chat turns. A nil invoker means the model is not
// configured; turns still complete, with an unavailability reply.
type Engine struct {
	config  Config
	invoker Invoker
	obs     *observability.Observability
	errors  *errors.Handler
	logger  Logger
}

// New creates an engine. obs may be nil when metrics are not wired.
func New(config Config, invoker Invoker, obs *observability.Observability, log Logger) *Engine {
	if config.DefaultMode == "" {
		config.DefaultMode = models.ModeAuto
	}
	if config.DefaultMaxTokens <= 0 {
		config.DefaultMaxTokens = 1000
	}

	return &Engine{
		config:  config,
		invoker: invoker,
		obs:     obs,
		errors:  errors.NewHandler(log),
		logger:  log,
	}
}

// Result is the outcome of one completed chat turn. When Err is set the
// Reply holds the error text that was appended to the transcript.
type Result struct {
	SessionID string
	Reply     string
	Intent    string
	Usage     *azureai.Usage
	Err       *errors.StandardError
}

// Respond processes one user message on the session. The user turn is
// appended first; exactly one assistant turn follows, carrying either the
// model reply or the error text. Turns on the same session are serialized,
// so concurrent callers never interleave their transcripts.
//
// An error return means the request never became a turn (empty message,
// unknown mode); the transcript is untouched in that case.
func (e *Engine) Respond(ctx context.Context, sess *session.Session, message string, settings models.ChatSettings) (*Result, error) {
	if strings.TrimSpace(message) == "" {
		return nil, errors.NewRequestValidationError("message is empty")
	}

	mode := settings.Mode
	if mode == "" {
		mode = e.config.DefaultMode
	}
	if !mode.IsValid() {
		return nil, errors.NewRequestValidationError(fmt.Sprintf("unknown chat mode %q", mode))
	}
	temperature := e.config.DefaultTemperature
	if settings.Temperature != nil {
		temperature = *settings.Temperature
	}
	maxTokens := e.config.DefaultMaxTokens
	if settings.MaxTokens != nil {
		maxTokens = *settings.MaxTokens
	}

	sess.LockTurn()
	defer sess.UnlockTurn()

	start := time.Now()
	query := intent.Parse(mode, message)

	if err := sess.Append(models.UserTurn(message)); err != nil {
		return nil, errors.Normalize(err)
	}

	turns, err := composer.Compose(query, message, sess.History())
	if err != nil {
		return e.failTurn(ctx, sess, query, start, errors.Normalize(err))
	}

	e.logger.Debug("prompt composed", map[string]interface{}{
		"sessionId": sess.ID(),
		"intent":    query.Kind(),
		"turns":     len(turns),
	})

	if e.invoker == nil {
		return e.failTurn(ctx, sess, query, start, errors.NewModelUnavailableError("azure client is not configured"))
	}

	completion, err := e.invoker.Complete(ctx, turns, temperature, maxTokens)
	if err != nil {
		return e.failTurn(ctx, sess, query, start, errors.Normalize(err))
	}

	if err := sess.Append(models.AssistantTurn(completion.Content)); err != nil {
		return nil, errors.Normalize(err)
	}

	metrics.ChatTurnsCompleted.WithLabelValues(query.Kind()).Inc()
	if e.obs != nil {
		e.obs.RecordTurnProcessed(ctx, "success")
		e.obs.RecordTurnDuration(ctx, time.Since(start), "success")
	}

	e.logger.Info("chat turn completed", map[string]interface{}{
		"sessionId":  sess.ID(),
		"intent":     query.Kind(),
		"durationMs": time.Since(start).Milliseconds(),
	})

	return &Result{
		SessionID: sess.ID(),
		Reply:     completion.Content,
		Intent:    query.Kind(),
		Usage:     completion.Usage,
	}, nil
}

// failTurn appends the error reply so the transcript still gets its
// assistant turn, then reports the failure.
func (e *Engine) failTurn(ctx context.Context, sess *session.Session, query intent.Query, start time.Time, se *errors.StandardError) (*Result, error) {
	e.errors.Handle(se, map[string]interface{}{
		"sessionId": sess.ID(),
		"intent":    query.Kind(),
	})

	reply := errorReply(se)
	if err := sess.Append(models.AssistantTurn(reply)); err != nil {
		return nil, errors.Normalize(err)
	}

	metrics.ChatTurnsFailed.WithLabelValues(query.Kind(), string(se.Code)).Inc()
	if e.obs != nil {
		e.obs.RecordTurnProcessed(ctx, "error")
		e.obs.RecordTurnDuration(ctx, time.Since(start), "error")
	}

	return &Result{
		SessionID: sess.ID(),
		Reply:     reply,
		Intent:    query.Kind(),
		Err:       se,
	}, nil
}

// errorReply renders the transcript text for a failed model call.
func errorReply(se *errors.StandardError) string {
	if se.Code == errors.ErrCodeModelUnavailable {
		return replyModelUnavailable
	}
	detail := se.Details
	if detail == "" {
		detail = se.Message
	}
	return replyErrorPrefix + detail
}
