package telegram

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"nanoconsult/internal/dialogue"
)

// Consultant is the inbound boundary the poller drives.
type Consultant interface {
	OnUserText(ctx context.Context, chatID int64, text string) dialogue.Reply
	OnStart(ctx context.Context, chatID int64) dialogue.Reply
	OnReset(ctx context.Context, chatID int64) dialogue.Reply
	OnCancel(ctx context.Context, chatID int64) dialogue.Reply
	Help() dialogue.Reply
}

const pollRetryDelay = 3 * time.Second

// Poller runs the getUpdates loop and routes messages to the service.
type Poller struct {
	client      *Client
	consultant  Consultant
	pollTimeout time.Duration
	logger      *zap.Logger
}

// NewPoller builds the update loop.
func NewPoller(client *Client, consultant Consultant, pollTimeout time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		client:      client,
		consultant:  consultant,
		pollTimeout: pollTimeout,
		logger:      logger,
	}
}

// Run polls until ctx is done. Transport errors are logged and retried
// after a short delay.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("bot is up and polling for updates")

	var offset int64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Warn("failed to fetch updates", zap.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pollRetryDelay):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			p.handle(ctx, update)
		}
	}
}

func (p *Poller) handle(ctx context.Context, update Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	reply := p.route(ctx, chatID, text)
	if reply.Text == "" {
		return
	}
	if err := p.client.SendMessage(ctx, chatID, reply.Text, reply.Choices); err != nil {
		p.logger.Warn("failed to send reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (p *Poller) route(ctx context.Context, chatID int64, text string) dialogue.Reply {
	if strings.HasPrefix(text, "/") {
		command := text
		if i := strings.IndexAny(command, " @"); i > 0 {
			command = command[:i]
		}
		switch command {
		case "/start":
			return p.consultant.OnStart(ctx, chatID)
		case "/clean":
			return p.consultant.OnReset(ctx, chatID)
		case "/cancel":
			return p.consultant.OnCancel(ctx, chatID)
		case "/help":
			return p.consultant.Help()
		default:
			p.logger.Debug("ignoring unknown command",
				zap.Int64("chat_id", chatID),
				zap.String("command", command))
			return dialogue.Reply{}
		}
	}
	return p.consultant.OnUserText(ctx, chatID, text)
}
