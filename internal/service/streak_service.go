package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studyflow/internal/repository"
	"github.com/limbo/studyflow/pkg/datebucket"
	"github.com/limbo/studyflow/pkg/entity"
)

type StreakService struct {
	tx      repository.TransactorI
	streaks repository.StreaksRepositoryI
	offset  datebucket.Offset
	now     func() time.Time
}

func NewStreakService(tx repository.TransactorI, streaksRepo repository.StreaksRepositoryI, offset datebucket.Offset) *StreakService {
	if tx == nil || streaksRepo == nil {
		log.Fatal("on streak service provided nil repos")
	}
	return &StreakService{
		tx:      tx,
		streaks: streaksRepo,
		offset:  offset,
		now:     time.Now,
	}
}

// SetClock replaces time source. Used by tests
func (ss *StreakService) SetClock(now func() time.Time) {
	ss.now = now
}

func (ss *StreakService) GetStreak(ctx context.Context, uid uuid.UUID) (*entity.StreakSummary, error) {
	streak, err := ss.streaks.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	if streak == nil {
		return &entity.StreakSummary{}, nil
	}
	return streak.Summary(), nil
}

func (ss *StreakService) TouchToday(ctx context.Context, uid uuid.UUID) (*entity.Streak, error) {
	today := datebucket.Today(ss.now(), ss.offset)
	var streak *entity.Streak
	err := ss.tx.InTx(ctx, func(repos repository.Repos) error {
		var err error
		streak, err = touchStreak(ctx, repos.Streaks, uid, today)
		return err
	})
	if err != nil {
		return nil, err
	}
	return streak, nil
}

// touchStreak applies one day of activity to user's streak. The row is locked
// for the rest of the transaction, so concurrent touches of the same user
// are applied one after another.
func touchStreak(ctx context.Context, repo repository.StreaksRepositoryI, uid uuid.UUID, today string) (*entity.Streak, error) {
	yesterday, err := datebucket.Yesterday(today)
	if err != nil {
		return nil, err
	}
	fresh := entity.NewStreak(uid, today)
	created, err := repo.CreateIfAbsent(ctx, fresh)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	if created {
		return fresh, nil
	}
	streak, err := repo.GetForUpdate(ctx, uid)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	if !streak.Touch(today, yesterday) {
		return streak, nil
	}
	if err = repo.Update(ctx, streak); err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return streak, nil
}
