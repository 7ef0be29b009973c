package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
)

type AuditPublisher interface {
	PublishRecordAccess(ctx context.Context, event *models.RecordAccessEvent) error
}
