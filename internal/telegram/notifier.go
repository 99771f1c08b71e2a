package telegram

import (
	"context"

	"go.uber.org/zap"
)

// AdminNotifier delivers operator cards to the admin chat.
type AdminNotifier struct {
	client      *Client
	adminChatID int64
	logger      *zap.Logger
}

// NewAdminNotifier returns a notifier bound to the admin chat.
func NewAdminNotifier(client *Client, adminChatID int64, logger *zap.Logger) *AdminNotifier {
	return &AdminNotifier{client: client, adminChatID: adminChatID, logger: logger}
}

// Notify sends the card, best effort.
func (n *AdminNotifier) Notify(ctx context.Context, card string) error {
	if n.adminChatID == 0 {
		n.logger.Debug("admin chat not configured, skip operator card")
		return nil
	}
	return n.client.SendMessage(ctx, n.adminChatID, card, nil)
}
