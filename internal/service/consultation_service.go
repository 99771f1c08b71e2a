// Package service orchestrates one consultation turn: session lookup,
// dialogue advance, record building, persistence and operator
// notification.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nanoconsult/internal/dialogue"
	"nanoconsult/internal/models"
	"nanoconsult/internal/operator"
	"nanoconsult/internal/session"
)

// RecordStore persists completed application records.
type RecordStore interface {
	Save(ctx context.Context, record models.ApplicationRecord) error
}

// Notifier delivers the operator card. Failures are logged, never
// surfaced to the end user.
type Notifier interface {
	Notify(ctx context.Context, card string) error
}

const helpText = "🤖 NANOREM automotive treatment assistant\n\n" +
	"I help you find out whether NANOREM treatment suits your assembly.\n\n" +
	"📋 Available commands:\n" +
	"• /start - begin a consultation\n" +
	"• /help - show this help\n" +
	"• /cancel - abort the current consultation\n\n" +
	"I will ask a few questions about the assembly's condition and then " +
	"give a recommendation on applying NANOREM."

const (
	cleanedText  = "Your data has been cleared. Let's start over.\n\nSend /start"
	canceledText = "Consultation finished."

	conclusionNotRecommended = "⚠️ Conclusion:\n\n" +
		"Based on the data provided, applying NANOREM is not recommended.\n\n" +
		"A preliminary diagnostic of the assembly is advised."
	conclusionEligible = "✅ Conclusion:\n\n" +
		"Based on the preliminary data, applying NANOREM is possible.\n" +
		"A consultation with a specialist is recommended."

	closingText = "Our specialist will contact you to confirm the details."
	restartHint = "Would you like a consultation for another assembly? Send /start."
)

// ConsultationService implements the inbound boundary of the bot.
type ConsultationService struct {
	machine   *dialogue.Machine
	sessions  *session.Manager
	records   RecordStore
	notifiers []Notifier
	showPrice bool
	logger    *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewConsultationService wires the service. records may be nil when
// persistence is disabled; notifiers may be empty.
func NewConsultationService(
	machine *dialogue.Machine,
	sessions *session.Manager,
	records RecordStore,
	notifiers []Notifier,
	showPrice bool,
	logger *zap.Logger,
) *ConsultationService {
	return &ConsultationService{
		machine:   machine,
		sessions:  sessions,
		records:   records,
		notifiers: notifiers,
		showPrice: showPrice,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.NewString() },
	}
}

// OnStart resets any prior progress and greets with the first question.
func (s *ConsultationService) OnStart(ctx context.Context, chatID int64) dialogue.Reply {
	s.sessions.Put(ctx, dialogue.NewSession(chatID))
	s.logger.Info("consultation started", zap.Int64("chat_id", chatID))
	return dialogue.Greeting()
}

// OnReset wipes the session unconditionally. Idempotent.
func (s *ConsultationService) OnReset(ctx context.Context, chatID int64) dialogue.Reply {
	s.sessions.Delete(ctx, chatID)
	return dialogue.Reply{Text: cleanedText}
}

// OnCancel terminates the session without producing a record. Idempotent.
func (s *ConsultationService) OnCancel(ctx context.Context, chatID int64) dialogue.Reply {
	s.sessions.Delete(ctx, chatID)
	return dialogue.Reply{Text: canceledText}
}

// Help returns the static command overview.
func (s *ConsultationService) Help() dialogue.Reply {
	return dialogue.Reply{Text: helpText}
}

// OnUserText advances the dialogue with one raw answer. A session is
// created on the first inbound message; on completion the record is
// built, persisted and announced, and the session is discarded.
func (s *ConsultationService) OnUserText(ctx context.Context, chatID int64, text string) dialogue.Reply {
	current, ok := s.sessions.Resolve(ctx, chatID)
	if !ok {
		current = dialogue.NewSession(chatID)
	}

	next, reply := s.machine.Advance(current, text)
	if reply.Outcome == nil {
		s.sessions.Put(ctx, next)
		return reply
	}

	record := s.buildRecord(chatID, reply.Outcome)
	s.persist(ctx, record)
	s.announce(ctx, record)
	s.sessions.Delete(ctx, chatID)

	s.logger.Info("consultation completed",
		zap.Int64("chat_id", chatID),
		zap.String("aggregate", string(record.Answers.Aggregate)),
		zap.String("verdict", string(record.Recommendation.Verdict)))

	return dialogue.Reply{Text: s.conclusionText(record)}
}

func (s *ConsultationService) buildRecord(chatID int64, outcome *dialogue.Outcome) models.ApplicationRecord {
	return models.ApplicationRecord{
		ID:             s.newID(),
		ChatID:         chatID,
		Timestamp:      s.now(),
		Answers:        outcome.Answers,
		Quote:          outcome.Quote,
		Recommendation: outcome.Recommendation,
		PrintableQuote: operator.PrintableQuote(outcome.Quote),
	}
}

func (s *ConsultationService) persist(ctx context.Context, record models.ApplicationRecord) {
	if s.records == nil {
		return
	}
	if err := s.records.Save(ctx, record); err != nil {
		s.logger.Error("failed to persist application record",
			zap.String("record_id", record.ID),
			zap.Error(err))
	}
}

func (s *ConsultationService) announce(ctx context.Context, record models.ApplicationRecord) {
	card := operator.RenderCard(record)
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, card); err != nil {
			s.logger.Error("failed to notify operator",
				zap.String("record_id", record.ID),
				zap.Error(err))
		}
	}
}

// conclusionText renders the user-facing terminal reply. Price figures
// appear only when disclosure is enabled and the quote exists.
func (s *ConsultationService) conclusionText(record models.ApplicationRecord) string {
	conclusion := conclusionEligible
	if record.Recommendation.Verdict == models.VerdictNotRecommended {
		conclusion = conclusionNotRecommended
	}

	text := conclusion + fmt.Sprintf("\n\nSelected assembly: %s.", record.Answers.Aggregate.Label())
	if s.showPrice && record.PrintableQuote != "" {
		text += "\n\n" + record.PrintableQuote
	}
	text += "\n\n" + closingText + "\n\n" + restartHint
	return text
}
