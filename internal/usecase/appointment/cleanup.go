package appointment

import (
	"context"
	"time"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
)

// CleanupExpiredPending cancels, in one batch, every PENDING
// appointment of the owner's business whose start is already past. No
// per-row notifications are emitted.
type CleanupExpiredPending struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCleanupExpiredPending(repo domain.Repository) *CleanupExpiredPending {
	return &CleanupExpiredPending{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *CleanupExpiredPending) WithClock(now func() time.Time) *CleanupExpiredPending {
	uc.now = now
	return uc
}

func (uc *CleanupExpiredPending) Execute(
	ctx context.Context,
	ownerID uint,
) (int64, error) {
	return uc.repo.BatchCancelExpiredPending(ctx, ownerID, uc.now())
}
