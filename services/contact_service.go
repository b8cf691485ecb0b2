package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neocodez/portfolio/dto"
	"github.com/neocodez/portfolio/logger"
	"github.com/neocodez/portfolio/mailer"
	"github.com/neocodez/portfolio/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type ContactStore interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	MarkDelivered(ctx context.Context, id bson.ObjectID) error
	List(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error)
	Delete(ctx context.Context, id string) error
}

type ContactService struct {
	messages ContactStore
	mail     mailer.Sender
	inbox    string
	now      func() time.Time
}

// NewContactService forwards submissions to inbox.
func NewContactService(messages ContactStore, mail mailer.Sender, inbox string) *ContactService {
	return &ContactService{
		messages: messages,
		mail:     mail,
		inbox:    inbox,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores the message first and then mails it. A delivery failure is
// reported but the stored message is kept so it can still be read by an admin.
func (s *ContactService) Submit(ctx context.Context, in dto.ContactDTO) (*models.ContactMessage, error) {
	m := &models.ContactMessage{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   in.Message,
		CreatedAt: s.now(),
	}

	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	msg, err := mailer.ContactEmail(s.inbox, m)
	if err == nil {
		err = s.mail.Send(ctx, msg)
	}
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("contact_id", m.ID.Hex()).Msg("contact form delivery failed")
		return m, fmt.Errorf("%w: %v", ErrDeliveryFailure, err)
	}

	if err := s.messages.MarkDelivered(ctx, m.ID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("contact_id", m.ID.Hex()).Msg("failed to flag contact message as delivered")
	} else {
		m.Delivered = true
	}
	return m, nil
}

func (s *ContactService) List(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error) {
	return s.messages.List(ctx, page, limit)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}
