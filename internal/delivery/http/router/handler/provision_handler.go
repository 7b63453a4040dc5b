package handler

import (
	"log/slog"
	"net/http"

	"storehub/internal/delivery/http/response"
	"storehub/internal/domain/entity"
	"storehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProvisionHandlerParams holds dependencies for ProvisionHandler, injected by Fx.
type ProvisionHandlerParams struct {
	fx.In

	ProvisionUC usecase.ProvisionUsecase
	Logger      *slog.Logger
}

// ProvisionHandler holds dependencies for store provisioning handlers
type ProvisionHandler struct {
	provisionUC usecase.ProvisionUsecase
	logger      *slog.Logger
}

// NewProvisionHandler is the constructor for ProvisionHandler
func NewProvisionHandler(params ProvisionHandlerParams) *ProvisionHandler {
	return &ProvisionHandler{
		provisionUC: params.ProvisionUC,
		logger:      params.Logger,
	}
}

// ProvisionStoreRequest represents the request body for provisioning a store
type ProvisionStoreRequest struct {
	BusinessType   string `json:"businessType" validate:"required,oneof=cafe restaurant retail salon empty"`
	StoreName      string `json:"storeName" validate:"omitempty,max=100"`
	OwnerName      string `json:"ownerName" validate:"omitempty,max=100"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	Address        string `json:"address" validate:"omitempty,max=200"`
	BusinessNumber string `json:"businessNumber" validate:"omitempty,max=30"`
}

// profile returns the profile carried in the request, nil when every
// profile field is empty.
func (r *ProvisionStoreRequest) profile() *entity.StoreProfile {
	if r.StoreName == "" && r.OwnerName == "" && r.Phone == "" && r.Address == "" && r.BusinessNumber == "" {
		return nil
	}

	return &entity.StoreProfile{
		StoreName:      r.StoreName,
		OwnerName:      r.OwnerName,
		Phone:          r.Phone,
		Address:        r.Address,
		BusinessNumber: r.BusinessNumber,
	}
}

// ProvisionStore creates the store document from a business type template
func (h *ProvisionHandler) ProvisionStore(c echo.Context) error {
	var req ProvisionStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provisioning input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.provisionUC.ProvisionStore(c.Request().Context(), c.Param("storeID"), entity.BusinessType(req.BusinessType), req.profile())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Store provisioned successfully")
}

// GetProfile reads the store profile recorded at provisioning
func (h *ProvisionHandler) GetProfile(c echo.Context) error {
	profile, err := h.provisionUC.GetProfile(c.Request().Context(), c.Param("storeID"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}
