// db/repo_activity_log.go
package db

import (
	"Gin_postgres_redis_equipment_lab/models"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

func (r *Repo) LogActivity(ctx context.Context, actorEmail, action string, details map[string]any, ip string) (*models.ActivityLog, error) {
	payload, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("marshal activity details: %w", err)
	}
	entry := &models.ActivityLog{
		ActorEmail: strings.ToLower(actorEmail),
		Action:     action,
		Details:    datatypes.JSON(payload),
		IPAddress:  ip,
	}
	if err := r.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("insert activity log: %w", err)
	}
	return entry, nil
}

type ActivityLogsQuery struct {
	ActorEmail string // "" = all actors
	Action     string // "" = all actions
	Page       int
	Size       int
}

type PagedActivityLogs struct {
	Logs        []models.ActivityLog `json:"logs"`
	CurrentPage int                  `json:"currentPage"`
	TotalPages  int                  `json:"totalPages"`
	TotalItems  int64                `json:"totalItems"`
}

func (r *Repo) ListActivityLogs(ctx context.Context, q ActivityLogsQuery) (*PagedActivityLogs, error) {
	page, size, offset := pageWindow(q.Page, q.Size)

	tx := r.DB.WithContext(ctx).Model(&models.ActivityLog{})
	if q.ActorEmail != "" {
		tx = tx.Where("actor_email = ?", strings.ToLower(q.ActorEmail))
	}
	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var logs []models.ActivityLog
	if err := tx.
		Order("created_at DESC").
		Offset(offset).
		Limit(size).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return &PagedActivityLogs{
		Logs:        logs,
		CurrentPage: page,
		TotalPages:  pageCount(total, size),
		TotalItems:  total,
	}, nil
}
