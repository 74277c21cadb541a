package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sihs-edu/campus-backend/internal/config"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService handles site notifications. Newly created notifications
// are published to a Redis channel so connected websocket clients see them
// without polling.
type NotificationService struct {
	repo *repository.NotificationRepository
	rdb  *redis.Client
	log  zerolog.Logger

	now func() time.Time
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo *repository.NotificationRepository, rdb *redis.Client, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		repo: repo,
		rdb:  rdb,
		log:  log.With().Str("component", "notification_service").Logger(),
		now:  time.Now,
	}
}

// ListAll retrieves every notification, including inactive and expired ones.
func (s *NotificationService) ListAll(ctx context.Context) ([]model.Notification, error) {
	return s.repo.ListAll(ctx)
}

// ListActive retrieves active, unexpired notifications for an audience.
func (s *NotificationService) ListActive(ctx context.Context, audience string) ([]model.Notification, error) {
	return s.repo.ListActive(ctx, audience)
}

// GetByID retrieves a notification by ID.
func (s *NotificationService) GetByID(ctx context.Context, id int) (*model.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotificationNotFound
	}
	return n, nil
}

// Create creates a notification and broadcasts it. A publish failure is
// logged but does not fail the request; the notification is already stored.
func (s *NotificationService) Create(ctx context.Context, req *model.NotificationRequest) (*model.Notification, error) {
	n := &model.Notification{IsActive: true}
	s.applyRequest(n, req)
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(n); err == nil {
		if err := s.rdb.Publish(ctx, config.CacheKey.NotificationChannel(), payload).Err(); err != nil {
			s.log.Warn().Err(err).Int("notification_id", n.ID).Msg("failed to publish notification")
		}
	}
	return n, nil
}

// Update modifies an existing notification.
func (s *NotificationService) Update(ctx context.Context, id int, req *model.NotificationRequest) (*model.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotificationNotFound
	}
	s.applyRequest(n, req)
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Delete soft-deletes a notification.
func (s *NotificationService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) applyRequest(n *model.Notification, req *model.NotificationRequest) {
	n.Title = strings.TrimSpace(req.Title)
	n.Message = req.Message
	if req.Date != nil {
		n.Date = *req.Date
	} else if n.Date.IsZero() {
		n.Date = s.now()
	}
	n.Category = req.Category
	if n.Category == "" {
		n.Category = "General"
	}
	n.Priority = req.Priority
	if n.Priority == "" {
		n.Priority = "Normal"
	}
	n.Department = req.Department
	n.TargetAudience = req.TargetAudience
	if n.TargetAudience == "" {
		n.TargetAudience = "All"
	}
	n.ImageURL = req.ImageURL
	n.ExpiresAt = req.ExpiresAt
	if req.IsActive != nil {
		n.IsActive = *req.IsActive
	}
}
