package render

import (
	log "log/slog"

	"dispensa/internal/session"
)

// Log is the fallback surface when no hub is configured: outcomes land in
// the daemon log and nowhere else.
type Log struct{}

func (Log) Transcript(text string) {
	log.Info("transcript", "text", text)
}

func (Log) Outcome(out session.Outcome) {
	switch out.Kind {
	case session.OutcomeQuery:
		log.Info("query answered", "kind", out.Query.Kind, "summary", out.Query.Summary)
		log.Info(out.Query.Message)
	case session.OutcomeDraft:
		log.Info("draft built",
			"name", out.Draft.Name,
			"category", out.Draft.Category,
			"days", out.Draft.DaysToExpiry,
			"location", out.Draft.Location,
			"autosubmit", out.AutoSubmit)
	case session.OutcomeUnrecognized:
		log.Warn("utterance not recognized", "transcript", out.Transcript)
		log.Info(out.Message)
	case session.OutcomeError:
		log.Error("session failed", "code", out.Err, "msg", out.Message)
	}
}
