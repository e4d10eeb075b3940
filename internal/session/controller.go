package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"dispensa/internal/nlu"
	"dispensa/internal/query"
)

type State uint

const (
	Idle State = iota
	Listening
	Processing
)

type ErrorCode string

const (
	CodeCapabilityUnavailable ErrorCode = "capability-unavailable"
	CodeRecognitionFailed     ErrorCode = "recognition-failed"
)

var (
	ErrCapabilityUnavailable = errors.New("speech recognition capability unavailable")
)

type OutcomeKind uint

const (
	OutcomeQuery OutcomeKind = iota
	OutcomeDraft
	OutcomeUnrecognized
	OutcomeError
)

// Outcome is the single result of one voice session. Exactly one Outcome
// is emitted per started session; errors are outcomes too, never panics or
// stray error returns from the middle of a session.
type Outcome struct {
	Kind       OutcomeKind
	Transcript string
	Query      query.Result
	Draft      nlu.Draft
	AutoSubmit bool
	Err        ErrorCode
	Message    string
}

// Recognizer is the platform speech capability: single-shot recognition,
// one transcript per call. Recognize must release its capture resources
// before returning; Stop forcibly aborts an in-flight Recognize and tears
// capture down synchronously.
type Recognizer interface {
	Recognize(ctx context.Context, locale string) (string, error)
	Stop()
}

// Submitter receives drafts the controller decided to auto-submit.
type Submitter interface {
	Submit(ctx context.Context, draft nlu.Draft) error
}

// Emitter is the render surface.
type Emitter interface {
	Transcript(text string)
	Outcome(out Outcome)
}

type Config struct {
	Locale string

	// SubmitDelay applies when both name and duration were extracted;
	// PartialSubmitDelay when only the name was. Both exist to leave the
	// user a correction window, so they are tunable rather than fixed.
	SubmitDelay        time.Duration
	PartialSubmitDelay time.Duration

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time

	CapabilityUnavailableMsg string
	RecognitionFailedMsg     string
	UnrecognizedHint         string
}

func DefaultConfig() Config {
	return Config{
		Locale:             "it-IT",
		SubmitDelay:        500 * time.Millisecond,
		PartialSubmitDelay: time.Second,
		Now:                time.Now,

		CapabilityUnavailableMsg: "Il riconoscimento vocale non è disponibile su questo dispositivo",
		RecognitionFailedMsg:     "Errore riconoscimento. Riprova a parlare più chiaramente",
		UnrecognizedHint:         `Prova a dire qualcosa come "latte che scade tra 5 giorni" o "cosa scade oggi?"`,
	}
}

type Deps struct {
	Recognizer Recognizer // nil means the platform capability is absent
	Classifier *nlu.Classifier
	Builder    *nlu.Builder
	Engine     *query.Engine
	Submitter  Submitter // nil disables auto-submit
	Emitter    Emitter
}

// Controller runs one listening session end to end: capture, transcript,
// intent dispatch, outcome emission. All session state is owned by the
// instance, so independent controllers coexist safely.
type Controller struct {
	cfg Config
	d   Deps

	mu    sync.Mutex
	state State
	cur   *handle
}

// handle identifies one session's capture resources. Teardown goes
// through a sync.Once so a forced restart and a late recognition return
// can never release the same session twice.
type handle struct {
	cancel context.CancelFunc
	stop   sync.Once
}

func New(cfg Config, d Deps) *Controller {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Controller{cfg: cfg, d: d}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start begins a new listening session. A session already in Listening is
// forcibly terminated first so microphone handles are never orphaned.
func (c *Controller) Start() error {
	c.mu.Lock()

	if c.d.Recognizer == nil {
		c.mu.Unlock()
		c.emit(Outcome{
			Kind:    OutcomeError,
			Err:     CodeCapabilityUnavailable,
			Message: c.cfg.CapabilityUnavailableMsg,
		})
		return ErrCapabilityUnavailable
	}

	if c.cur != nil {
		c.teardown(c.cur)
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &handle{cancel: cancel}
	c.cur = h
	c.state = Listening
	c.mu.Unlock()

	go c.run(ctx, h)
	return nil
}

// Cancel stops an active listening session and discards any partial
// transcript. Capture is stopped before Cancel returns.
func (c *Controller) Cancel() {
	c.mu.Lock()
	h := c.cur
	if h == nil || c.state != Listening {
		c.mu.Unlock()
		return
	}
	c.cur = nil
	c.state = Idle
	c.mu.Unlock()

	c.teardown(h)
}

func (c *Controller) teardown(h *handle) {
	h.stop.Do(func() {
		h.cancel()
		c.d.Recognizer.Stop()
	})
}

func (c *Controller) run(ctx context.Context, h *handle) {
	transcript, err := c.d.Recognizer.Recognize(ctx, c.cfg.Locale)

	c.mu.Lock()
	if c.cur != h {
		// Cancelled or superseded while listening; this session's
		// outcome is discarded.
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.cur = nil
		c.state = Idle
		c.mu.Unlock()
		slog.Warn("recognition failed", "err", err)
		c.emit(Outcome{
			Kind:    OutcomeError,
			Err:     CodeRecognitionFailed,
			Message: c.cfg.RecognitionFailedMsg,
		})
		return
	}
	c.state = Processing
	c.mu.Unlock()

	if c.d.Emitter != nil {
		c.d.Emitter.Transcript(transcript)
	}

	out := c.process(transcript)

	c.mu.Lock()
	if c.cur != h {
		c.mu.Unlock()
		return
	}
	c.cur = nil
	c.state = Idle
	c.mu.Unlock()

	// Submission is scheduled only for a session that survived to this
	// point: a superseded session's draft must not reach the sink when
	// its outcome was never emitted.
	if out.Kind == OutcomeDraft && out.AutoSubmit {
		c.scheduleSubmit(out.Draft)
	}
	c.emit(out)
}

func (c *Controller) process(transcript string) Outcome {
	intent := c.d.Classifier.Classify(transcript)

	if intent.Kind == nlu.IntentQuery {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		res := c.d.Engine.Answer(ctx, intent.Query, c.cfg.Now())
		return Outcome{Kind: OutcomeQuery, Transcript: transcript, Query: res}
	}

	draft := c.d.Builder.Build(transcript)
	if draft.Name == "" {
		return Outcome{
			Kind:       OutcomeUnrecognized,
			Transcript: transcript,
			Message:    c.cfg.UnrecognizedHint,
		}
	}

	return Outcome{
		Kind:       OutcomeDraft,
		Transcript: transcript,
		Draft:      draft,
		AutoSubmit: c.d.Submitter != nil,
	}
}

// scheduleSubmit hands the draft to the persistence collaborator after a
// delay: short when the draft looks complete, longer when only the name
// was recognized, so the user can still correct it by hand.
func (c *Controller) scheduleSubmit(draft nlu.Draft) {
	delay := c.cfg.PartialSubmitDelay
	if draft.DaysToExpiry > 0 {
		delay = c.cfg.SubmitDelay
	}

	time.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := c.d.Submitter.Submit(ctx, draft); err != nil {
			slog.Error("auto-submit failed", "name", draft.Name, "err", err)
		}
	})
}

func (c *Controller) emit(out Outcome) {
	if c.d.Emitter == nil {
		return
	}
	c.d.Emitter.Outcome(out)
}
