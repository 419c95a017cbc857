package handler

import (
	"net/http"

	"nms/internal/delivery/http/response"
	"nms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CityHandlerParams holds dependencies for CityHandler, injected by Fx.
type CityHandlerParams struct {
	fx.In

	CityUC usecase.CityUsecase
}

type CityHandler struct {
	cityUC usecase.CityUsecase
}

func NewCityHandler(params CityHandlerParams) *CityHandler {
	return &CityHandler{
		cityUC: params.CityUC,
	}
}

func (h *CityHandler) AddCity(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.CityDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	city, err := h.cityUC.AddCity(c.Request().Context(), actorID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, city, "City added successfully")
}

func (h *CityHandler) UpdateCity(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.CityDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}
	if err := requireID(input.ID, "cityId"); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if err := h.cityUC.UpdateCity(c.Request().Context(), actorID, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CityHandler) GetCity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.ValidationError(c, err.Error())
	}

	city, err := h.cityUC.GetCity(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, city, "")
}

// GetCities lists every city, or only those of ?countryId= when given.
func (h *CityHandler) GetCities(c echo.Context) error {
	var countryID int64
	if err := echo.QueryParamsBinder(c).Int64("countryId", &countryID).BindError(); err != nil {
		return response.ValidationError(c, "countryId must be an integer")
	}

	cities, err := h.cityUC.ListCities(c.Request().Context(), countryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cities, "")
}
