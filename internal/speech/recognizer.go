// Package speech binds the microphone recorder and the whisper transcriber
// into the single-shot recognition capability the session controller
// consumes. Construction fails when the platform lacks an input device or
// the model is missing; callers treat that as "capability absent" rather
// than a fatal condition.
package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"dispensa/internal/audio"
	"dispensa/pkg/stt"
)

var ErrNoSpeech = errors.New("no speech captured")

type recorder interface {
	Record(stop <-chan struct{}) ([]float32, error)
	Close()
}

type transcriber interface {
	TranscribePCM(ctx context.Context, pcm []float32, opt stt.Options) (stt.Result, error)
	Close() error
}

type Recognizer struct {
	rec recorder
	tr  transcriber

	mu   sync.Mutex
	stop chan struct{}
}

func New(modelPath string) (*Recognizer, error) {
	rec := audio.NewRecorder()
	if err := rec.Init(); err != nil {
		return nil, fmt.Errorf("init audio: %w", err)
	}

	tr, err := stt.NewTranscriber(modelPath)
	if err != nil {
		rec.Close()
		return nil, fmt.Errorf("init transcriber: %w", err)
	}

	return &Recognizer{rec: rec, tr: tr}, nil
}

func (r *Recognizer) Close() error {
	r.rec.Close()
	return r.tr.Close()
}

// Recognize records one utterance and transcribes it. Capture is released
// before transcription begins; Stop or context cancellation ends capture
// early and surfaces the context error.
func (r *Recognizer) Recognize(ctx context.Context, locale string) (string, error) {
	// A context cancelled before capture starts must not register a stop
	// channel at all: a superseded session reaching this point late would
	// otherwise clobber the registration of the session that replaced it
	// and leave its capture unreachable by Stop.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stop := make(chan struct{})
	r.mu.Lock()
	r.stop = stop
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		if r.stop == stop {
			r.stop = nil
		}
		r.mu.Unlock()
	}()

	recorded := make(chan struct{})
	defer close(recorded)
	go func() {
		select {
		case <-ctx.Done():
			r.Stop()
		case <-recorded:
		}
	}()

	pcm, err := r.rec.Record(stop)
	if err != nil {
		return "", fmt.Errorf("record: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(pcm) == 0 {
		return "", ErrNoSpeech
	}

	res, err := r.tr.TranscribePCM(ctx, pcm, stt.Options{Language: whisperLang(locale)})
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	if res.Text == "" {
		return "", ErrNoSpeech
	}
	return res.Text, nil
}

// Stop aborts an in-flight capture synchronously. Safe to call at any
// time, including with no session active.
func (r *Recognizer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop != nil {
		close(r.stop)
		r.stop = nil
	}
}

// whisperLang maps a BCP 47 tag like "it-IT" to whisper's language code.
func whisperLang(locale string) string {
	if locale == "" {
		return "auto"
	}
	return strings.ToLower(strings.SplitN(locale, "-", 2)[0])
}
