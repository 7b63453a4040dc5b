package impl

import (
	"context"
	"testing"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Create_DefaultsToRegularTier(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{entity.SliceCustomers: []entity.Customer{}})
	svc := NewCustomerService(testManager(t, channel))

	customer, err := svc.CreateCustomer(context.Background(), "store-1", &usecase.CustomerInput{
		Name: "Park",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TierRegular, customer.Tier)
}

func TestCustomerService_Update(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{entity.SliceCustomers: []entity.Customer{
		{ID: "c1", Name: "Park", Tier: entity.TierRegular, Visits: 4},
	}})
	svc := NewCustomerService(testManager(t, channel))

	customer, err := svc.UpdateCustomer(context.Background(), "store-1", "c1", &usecase.CustomerInput{
		Name: "Park", Tier: entity.TierVIP, Visits: 5, TotalSpent: 320000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TierVIP, customer.Tier)
	assert.Equal(t, 5, customer.Visits)
}
