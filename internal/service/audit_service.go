package service

import (
	"context"
	"fmt"

	"shopsphere-admin-be/internal/pkg/logger"
	"shopsphere-admin-be/pkg/events"
	pktNats "shopsphere-admin-be/pkg/nats"
)

// AuditService mirrors every domain event published on NATS into the
// operations log, so the log endpoints double as an event audit trail.
type AuditService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewAuditService(sub *pktNats.Subscriber, log logger.ILogger) *AuditService {
	return &AuditService{
		subscriber: sub,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *AuditService) Start() {
	err := s.subscriber.Subscribe("shopsphere.>", "ops-audit-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("AuditService", "Failed to start audit subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("AuditService", "Audit service started, listening to shopsphere.>", nil)
}

func (s *AuditService) handleEvent(ctx context.Context, event events.Event) error {
	details := event.Payload()
	if details == nil {
		details = map[string]interface{}{}
	}
	details["occurred_at"] = event.Timestamp()

	s.logger.Info("AUDIT", fmt.Sprintf("Event observed: %s", event.EventType()), details)
	return nil
}
