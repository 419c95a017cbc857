package handler

import (
	"net/http"

	"nms/internal/delivery/http/response"
	"nms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
	}
}

// AddAddress handles POST /api/address/add-address.
func (h *AddressHandler) AddAddress(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.AddressDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	address, err := h.addressUC.AddAddress(c.Request().Context(), actorID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "Address added successfully")
}

// UpdateAddress handles PUT /api/address/update-address.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.AddressDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}
	if err := requireID(input.ID, "addressId"); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if err := h.addressUC.UpdateAddress(c.Request().Context(), actorID, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAddress handles GET /api/address/get-address/:id.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.ValidationError(c, err.Error())
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "")
}

// GetAddresses handles GET /api/address/get-addresses with optional cityId and sourceType filters.
func (h *AddressHandler) GetAddresses(c echo.Context) error {
	var filter usecase.AddressFilter
	if err := c.Bind(&filter); err != nil {
		return response.ValidationError(c, "invalid address filter")
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}
