package db

import (
	"context"
	"fmt"

	"github.com/Arss011/network-toolkit-management-api/models"
)

func (r *Repo) LogAction(ctx context.Context, actorID uint, actorUsername, action, entity string, entityID uint, detail *string) (*models.AuditLog, error) {
	entry := &models.AuditLog{
		ActorID:       actorID,
		ActorUsername: actorUsername,
		Action:        action,
		Entity:        entity,
		EntityID:      entityID,
		Detail:        detail,
	}
	if err := r.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("insert audit log: %w", err)
	}
	return entry, nil
}
