package handler

import (
	"net/http"

	"nms/internal/delivery/http/response"
	"nms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CountryHandlerParams holds dependencies for CountryHandler, injected by Fx.
type CountryHandlerParams struct {
	fx.In

	CountryUC usecase.CountryUsecase
}

type CountryHandler struct {
	countryUC usecase.CountryUsecase
}

func NewCountryHandler(params CountryHandlerParams) *CountryHandler {
	return &CountryHandler{
		countryUC: params.CountryUC,
	}
}

func (h *CountryHandler) AddCountry(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.CountryDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	country, err := h.countryUC.AddCountry(c.Request().Context(), actorID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, country, "Country added successfully")
}

func (h *CountryHandler) UpdateCountry(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.CountryDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}
	if err := requireID(input.ID, "countryId"); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if err := h.countryUC.UpdateCountry(c.Request().Context(), actorID, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CountryHandler) GetCountry(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.ValidationError(c, err.Error())
	}

	country, err := h.countryUC.GetCountry(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, country, "")
}

func (h *CountryHandler) GetCountries(c echo.Context) error {
	countries, err := h.countryUC.ListCountries(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, countries, "")
}
