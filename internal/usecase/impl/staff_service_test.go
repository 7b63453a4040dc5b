package impl

import (
	"context"
	"testing"

	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffService_Create_DefaultsToActive(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{entity.SliceStaff: []entity.Staff{}})
	svc := NewStaffService(testManager(t, channel))

	member, err := svc.CreateStaff(context.Background(), "store-1", &usecase.StaffInput{
		Name: "Lee", Role: "barista",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", member.Status)
	assert.NotEmpty(t, member.ID)
}

func TestStaffService_Update(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{entity.SliceStaff: []entity.Staff{
		{ID: "s1", Name: "Lee", Role: "barista", CreatedAt: "2025-01-01"},
	}})
	svc := NewStaffService(testManager(t, channel))

	member, err := svc.UpdateStaff(context.Background(), "store-1", "s1", &usecase.StaffInput{
		Name: "Lee", Role: "manager", Status: "active",
	})
	require.NoError(t, err)
	assert.Equal(t, "manager", member.Role)
	assert.Equal(t, "2025-01-01", member.CreatedAt)
}

func TestStaffService_Delete_NotFound(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{entity.SliceStaff: []entity.Staff{}})
	svc := NewStaffService(testManager(t, channel))

	err := svc.DeleteStaff(context.Background(), "store-1", "nope")
	require.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}
