package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// slotPartition separates the grants found for a candidate slot set into
// live conflicts (owned by an ACTIVE reservation) and zombies (owner gone
// or in a terminal status).
type slotPartition struct {
	conflictLabels []string
	zombieIDs      []uuid.UUID
}

// partitionGrants classifies grants against the candidate slots. For
// reschedule flows excludeID skips the reservation's own grants so it does
// not conflict with itself.
func partitionGrants(grants []*entity.SlotGrantOwner, excludeID *uuid.UUID) slotPartition {
	var part slotPartition
	seen := make(map[string]bool)

	for _, grant := range grants {
		if grant.IsZombie() {
			part.zombieIDs = append(part.zombieIDs, grant.GrantID)
			continue
		}
		if excludeID != nil && grant.ReservationID == *excludeID {
			continue
		}
		if !seen[grant.SlotLabel] {
			seen[grant.SlotLabel] = true
			part.conflictLabels = append(part.conflictLabels, grant.SlotLabel)
		}
	}

	sort.Strings(part.conflictLabels)
	return part
}

// resolveAvailability is the optimistic fast path: check candidate slots
// for live conflicts, then delete zombie grants inside the caller's
// transaction so the new inserts do not trip the uniqueness backstop on
// stale rows. Fails with SlotConflictError without mutating anything when
// a live conflict exists.
func (s *reservationService) resolveAvailability(
	ctx context.Context,
	repo *repository.Repository,
	courtID uuid.UUID,
	date time.Time,
	labels []string,
	excludeID *uuid.UUID,
) error {
	grants, err := repo.SlotGrant.FindWithOwnerStatus(ctx, courtID, date, labels)
	if err != nil {
		return fmt.Errorf("load slot grants: %w", err)
	}

	part := partitionGrants(grants, excludeID)

	if len(part.conflictLabels) > 0 {
		return &SlotConflictError{Slots: part.conflictLabels}
	}

	if len(part.zombieIDs) > 0 {
		s.log.Info("Cleaning zombie slot grants",
			zap.String("court_id", courtID.String()),
			zap.Int("count", len(part.zombieIDs)),
		)
		if err := repo.SlotGrant.DeleteByIDs(ctx, part.zombieIDs); err != nil {
			return fmt.Errorf("delete zombie slot grants: %w", err)
		}
	}

	return nil
}
