// Package notification sends emails in response to domain events. It
// subscribes to the event bus so domain modules never need to know about
// email providers or templates.
package notification

import (
	"context"
	"fmt"

	"leadgen_backend/internal/email"
	"leadgen_backend/internal/events"
	"leadgen_backend/platform/config"
	"leadgen_backend/platform/logger"
)

type Module struct {
	sender      email.Sender
	notifyEmail string
	log         *logger.Logger
}

func New(sender email.Sender, cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{
		sender:      sender,
		notifyEmail: cfg.GetNotifyEmail(),
		log:         log,
	}
}

// RegisterHandlers subscribes the module to the events it reacts to.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadCaptured{}.EventName(), events.HandlerFunc(m.handleLeadCaptured))
}

func (m *Module) handleLeadCaptured(ctx context.Context, event events.Event) error {
	captured, ok := event.(events.LeadCaptured)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.EventName())
	}

	if m.notifyEmail == "" {
		return nil
	}

	err := m.sender.SendNewLeadEmail(ctx, m.notifyEmail, email.NewLeadEmailParams{
		LeadID:    captured.LeadID.String(),
		Role:      captured.Role,
		FirstName: captured.FirstName,
		LastName:  captured.LastName,
		Email:     captured.Email,
		Phone:     captured.Phone,
		ZipCode:   captured.ZipCode,
		Timeline:  captured.Timeline,
		Score:     captured.Score,
	})
	if err != nil {
		m.log.Error("send new lead email", "lead_id", captured.LeadID, "error", err)
		return err
	}

	return nil
}
