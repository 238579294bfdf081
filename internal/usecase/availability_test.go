package usecase

import (
	"testing"

	"court-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func activeStatus() *entity.ReservationStatus {
	status := entity.ReservationStatusActive
	return &status
}

func cancelledStatus() *entity.ReservationStatus {
	status := entity.ReservationStatusCancelled
	return &status
}

func TestPartitionGrants(t *testing.T) {
	ownerA := uuid.New()
	ownerB := uuid.New()

	t.Run("live conflicts sorted and deduplicated", func(t *testing.T) {
		grants := []*entity.SlotGrantOwner{
			{GrantID: uuid.New(), SlotLabel: "10:30", ReservationID: ownerA, OwnerStatus: activeStatus()},
			{GrantID: uuid.New(), SlotLabel: "10:00", ReservationID: ownerA, OwnerStatus: activeStatus()},
			{GrantID: uuid.New(), SlotLabel: "10:00", ReservationID: ownerB, OwnerStatus: activeStatus()},
		}

		part := partitionGrants(grants, nil)

		assert.Equal(t, []string{"10:00", "10:30"}, part.conflictLabels)
		assert.Empty(t, part.zombieIDs)
	})

	t.Run("terminal owners and orphans are zombies", func(t *testing.T) {
		zombieA := uuid.New()
		zombieB := uuid.New()
		grants := []*entity.SlotGrantOwner{
			{GrantID: zombieA, SlotLabel: "10:00", ReservationID: ownerA, OwnerStatus: cancelledStatus()},
			{GrantID: zombieB, SlotLabel: "10:15", ReservationID: ownerB, OwnerStatus: nil},
		}

		part := partitionGrants(grants, nil)

		assert.Empty(t, part.conflictLabels)
		assert.ElementsMatch(t, []uuid.UUID{zombieA, zombieB}, part.zombieIDs)
	})

	t.Run("own grants excluded on reschedule", func(t *testing.T) {
		grants := []*entity.SlotGrantOwner{
			{GrantID: uuid.New(), SlotLabel: "10:00", ReservationID: ownerA, OwnerStatus: activeStatus()},
			{GrantID: uuid.New(), SlotLabel: "10:15", ReservationID: ownerB, OwnerStatus: activeStatus()},
		}

		part := partitionGrants(grants, &ownerA)

		assert.Equal(t, []string{"10:15"}, part.conflictLabels)
	})

	t.Run("mixed live and zombie", func(t *testing.T) {
		zombie := uuid.New()
		grants := []*entity.SlotGrantOwner{
			{GrantID: zombie, SlotLabel: "10:00", ReservationID: ownerA, OwnerStatus: cancelledStatus()},
			{GrantID: uuid.New(), SlotLabel: "10:15", ReservationID: ownerB, OwnerStatus: activeStatus()},
		}

		part := partitionGrants(grants, nil)

		assert.Equal(t, []string{"10:15"}, part.conflictLabels)
		assert.Equal(t, []uuid.UUID{zombie}, part.zombieIDs)
	})

	t.Run("no grants means free", func(t *testing.T) {
		part := partitionGrants(nil, nil)

		assert.Empty(t, part.conflictLabels)
		assert.Empty(t, part.zombieIDs)
	})
}

func TestSlotGrantOwnerIsZombie(t *testing.T) {
	completed := entity.ReservationStatusCompleted

	assert.True(t, (&entity.SlotGrantOwner{OwnerStatus: nil}).IsZombie())
	assert.True(t, (&entity.SlotGrantOwner{OwnerStatus: cancelledStatus()}).IsZombie())
	assert.True(t, (&entity.SlotGrantOwner{OwnerStatus: &completed}).IsZombie())
	assert.False(t, (&entity.SlotGrantOwner{OwnerStatus: activeStatus()}).IsZombie())
}
