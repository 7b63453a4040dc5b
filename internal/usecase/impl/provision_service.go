package impl

import (
	"context"
	"log/slog"

	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

type provisionService struct {
	channel service.DocumentChannel
	logger  *slog.Logger
}

// NewProvisionService creates a new provision service instance
func NewProvisionService(channel service.DocumentChannel, logger *slog.Logger) usecase.ProvisionUsecase {
	return &provisionService{
		channel: channel,
		logger:  logger,
	}
}

// ProvisionStore creates the owner document seeded from the business type
// template. Every slice field is written so later bindings always find their
// field present.
func (s *provisionService) ProvisionStore(ctx context.Context, storeID string, businessType entity.BusinessType, profile *entity.StoreProfile) error {
	if storeID == "" {
		return domainerrors.ErrStoreIDRequired
	}
	if !businessType.Valid() {
		return domainerrors.ErrUnknownBusinessType
	}

	existing, err := s.channel.Get(ctx, storeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domainerrors.ErrStoreAlreadyExists
	}

	doc := service.Document{
		entity.SliceProducts:     businessType.Template(),
		entity.SliceSalesData:    []entity.LedgerEntry{},
		entity.SliceStaff:        []entity.Staff{},
		entity.SliceReservations: []entity.Reservation{},
		entity.SliceCustomers:    []entity.Customer{},
		entity.SliceSchedules:    entity.Schedule{},
	}
	if profile != nil {
		recorded := *profile
		recorded.BusinessType = businessType
		doc[entity.FieldProfile] = recorded
	}
	if err := s.channel.Create(ctx, storeID, doc); err != nil {
		return err
	}

	s.logger.Info("store provisioned",
		slog.String("store_id", storeID),
		slog.String("business_type", string(businessType)),
	)

	return nil
}

// GetProfile reads the profile recorded at provisioning time. A store that
// was provisioned without one reports not found.
func (s *provisionService) GetProfile(ctx context.Context, storeID string) (*entity.StoreProfile, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	doc, err := s.channel.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domainerrors.ErrStoreNotFound
	}
	raw, ok := doc[entity.FieldProfile]
	if !ok || raw == nil {
		return nil, domainerrors.ErrEntityNotFound
	}

	var profile entity.StoreProfile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &profile,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "build profile decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "decode profile")
	}

	return &profile, nil
}
