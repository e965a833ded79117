package usecase

import (
	"context"
	"time"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/apperror"
	"ralph-xpert-backend/pkg/logger"
)

type statsUsecase struct {
	messageRepo domain.MessageRepository
	contactRepo domain.ContactRepository
	now         func() time.Time
}

func NewStatsUsecase(messageRepo domain.MessageRepository, contactRepo domain.ContactRepository) domain.StatsUsecase {
	return &statsUsecase{
		messageRepo: messageRepo,
		contactRepo: contactRepo,
		now:         time.Now,
	}
}

// Compute aggregates both tables in memory. "Today" starts at the
// server's local midnight.
func (u *statsUsecase) Compute(ctx context.Context) (*domain.Stats, error) {
	messages, err := u.messageRepo.FetchStats(ctx)
	if err != nil {
		logger.Log.Error("stats message fetch failed", "error", err)
		return nil, apperror.Internal("Erreur serveur", err)
	}

	contacts, err := u.contactRepo.FetchTimestamps(ctx)
	if err != nil {
		logger.Log.Error("stats contact fetch failed", "error", err)
		return nil, apperror.Internal("Erreur serveur", err)
	}

	now := u.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := &domain.Stats{
		TotalMessages: len(messages),
		TotalContacts: len(contacts),
	}
	for _, m := range messages {
		if m.Read {
			stats.ReadMessages++
		} else {
			stats.NewMessages++
		}
		if !m.Timestamp.Before(midnight) {
			stats.TodayMessages++
		}
	}
	for _, ts := range contacts {
		if !ts.Before(midnight) {
			stats.TodayContacts++
		}
	}
	return stats, nil
}
