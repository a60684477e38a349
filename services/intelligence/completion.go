package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// EmptyReplyPlaceholder is returned when the model answers with blank text.
const EmptyReplyPlaceholder = "(no response)"

// DefaultTimeout bounds a single model call.
const DefaultTimeout = 30 * time.Second

type Source string

const (
	SourceModel   Source = "model"
	SourceOffline Source = "offline"
	SourceCache   Source = "cache"
	// SourceClient marks text echoed back by the client, e.g. a strategy already shown on a page.
	SourceClient  Source = "client"
)

// Completion is the outcome of a prompt. Err is set when the model call failed.
type Completion struct {
	Text   string
	Source Source
	Err    error
}

func (c Completion) Failed() bool {
	return c.Err != nil
}

// Reply renders the completion as user-facing text, embedding the failure reason if any.
func (c Completion) Reply() string {
	if c.Err != nil {
		return "AI error: " + c.Err.Error()
	}
	return c.Text
}

type Option func(*CompletionService)

func WithTimeout(d time.Duration) Option {
	return func(s *CompletionService) { s.timeout = d }
}

func WithCache(cache ReplyCache) Option {
	return func(s *CompletionService) { s.cache = cache }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *CompletionService) { s.logger = logger }
}

// WithModelName scopes cache keys to a model so switching models never serves stale replies.
func WithModelName(name string) Option {
	return func(s *CompletionService) { s.model = name }
}

// CompletionService implements Completer. A nil generator means offline mode.
type CompletionService struct {
	gen     Generator
	model   string
	timeout time.Duration
	cache   ReplyCache
	logger  *zap.Logger
}

func NewCompletionService(gen Generator, opts ...Option) *CompletionService {
	s := &CompletionService{
		gen:     gen,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CompletionService) Online() bool {
	return s.gen != nil
}

func (s *CompletionService) Complete(ctx context.Context, prompt string) (result Completion) {
	if s.gen == nil {
		return Completion{Text: OfflineReply(prompt), Source: SourceOffline}
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("ai: generator panicked", zap.Any("panic", r))
			result = Completion{Source: SourceModel, Err: fmt.Errorf("generator panic: %v", r)}
		}
	}()

	key := s.cacheKey(prompt)
	if s.cache != nil {
		reply, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("ai: reply cache read failed", zap.Error(err))
		} else if ok {
			return Completion{Text: reply, Source: SourceCache}
		}
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.gen.GenerateContent(callCtx, prompt)
	if err != nil {
		s.logger.Warn("ai: generation failed", zap.Error(err))
		return Completion{Source: SourceModel, Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Completion{Text: EmptyReplyPlaceholder, Source: SourceModel}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text); err != nil {
			s.logger.Warn("ai: reply cache write failed", zap.Error(err))
		}
	}
	return Completion{Text: text, Source: SourceModel}
}

func (s *CompletionService) cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(s.model + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}
