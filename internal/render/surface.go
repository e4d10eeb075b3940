// Package render pushes session outcomes to the UI hub over a websocket.
// The daemon has no UI of its own: whatever listens on the hub decides how
// transcripts, answers and drafts are shown.
package render

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"

	"dispensa/internal/nlu"
	"dispensa/internal/session"
)

// Frame is one JSON message on the wire.
type Frame struct {
	Kind       string     `json:"kind"` // transcript | query | draft | unrecognized | error
	Transcript string     `json:"transcript,omitempty"`
	Message    string     `json:"message,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	Draft      *nlu.Draft `json:"draft,omitempty"`
	AutoSubmit bool       `json:"autosubmit,omitempty"`
	Code       string     `json:"code,omitempty"`
}

type Surface struct {
	url    string
	reconn time.Duration

	mu   sync.Mutex
	conn *ws.Conn
}

func Dial(url string, reconn time.Duration) (*Surface, error) {
	conn, _, err := ws.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}

	slog.Info("connected to render hub", "url", url)
	return &Surface{url: url, reconn: reconn, conn: conn}, nil
}

func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

func (s *Surface) Transcript(text string) {
	s.push(Frame{Kind: "transcript", Transcript: text})
}

func (s *Surface) Outcome(out session.Outcome) {
	switch out.Kind {
	case session.OutcomeQuery:
		s.push(Frame{
			Kind:       "query",
			Transcript: out.Transcript,
			Message:    out.Query.Message,
			Summary:    out.Query.Summary,
			Code:       string(out.Query.Kind),
		})
	case session.OutcomeDraft:
		draft := out.Draft
		s.push(Frame{
			Kind:       "draft",
			Transcript: out.Transcript,
			Draft:      &draft,
			AutoSubmit: out.AutoSubmit,
		})
	case session.OutcomeUnrecognized:
		s.push(Frame{
			Kind:       "unrecognized",
			Transcript: out.Transcript,
			Message:    out.Message,
		})
	case session.OutcomeError:
		s.push(Frame{
			Kind:    "error",
			Code:    string(out.Err),
			Message: out.Message,
		})
	}
}

// push writes one frame, redialing once on a closed connection. A frame
// that still cannot be delivered is logged and dropped; the voice flow
// must not stall on a flaky hub.
func (s *Surface) push(f Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		slog.Error("encode frame", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.conn.WriteMessage(ws.TextMessage, data); err == nil {
		return
	} else if !isClosed(err) {
		slog.Error("push frame", "kind", f.Kind, "err", err)
		return
	}

	slog.Warn("render hub gone, redialing", "url", s.url)
	time.Sleep(s.reconn)

	conn, _, err := ws.DefaultDialer.Dial(s.url, nil)
	if err != nil {
		slog.Error("redial render hub", "err", err)
		return
	}
	s.conn = conn

	if err := s.conn.WriteMessage(ws.TextMessage, data); err != nil {
		slog.Error("push frame after redial", "kind", f.Kind, "err", err)
	}
}

func isClosed(err error) bool {
	return ws.IsCloseError(err,
		ws.CloseNormalClosure,
		ws.CloseGoingAway,
		ws.CloseAbnormalClosure) || ws.IsUnexpectedCloseError(err)
}
