package appointment

import (
	"context"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

// resolveActor derives the acting user's relationship to the
// appointment's business: owner flag plus staff profile, if any. A
// staff profile from another business is ignored here and surfaces as
// a plain unrelated actor.
func resolveActor(
	ctx context.Context,
	repo domain.Repository,
	userID uint,
	biz *models.Business,
) domain.Actor {

	actor := domain.Actor{
		UserID:  userID,
		IsOwner: biz.OwnerID == userID,
	}

	if staff, err := repo.GetStaffByUserID(ctx, userID); err == nil && staff.BusinessID == biz.ID {
		actor.Staff = staff
	}

	return actor
}
