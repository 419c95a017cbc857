package handler

import (
	"net/http"

	"nms/internal/delivery/http/response"
	"nms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CompanyHandlerParams holds dependencies for CompanyHandler, injected by Fx.
type CompanyHandlerParams struct {
	fx.In

	CompanyUC usecase.CompanyUsecase
}

type CompanyHandler struct {
	companyUC usecase.CompanyUsecase
}

func NewCompanyHandler(params CompanyHandlerParams) *CompanyHandler {
	return &CompanyHandler{
		companyUC: params.CompanyUC,
	}
}

func (h *CompanyHandler) AddCompany(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.CompanyDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	company, err := h.companyUC.AddCompany(c.Request().Context(), actorID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, company, "Company added successfully")
}

func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.CompanyDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}
	if err := requireID(input.ID, "companyId"); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if err := h.companyUC.UpdateCompany(c.Request().Context(), actorID, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CompanyHandler) GetCompany(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.ValidationError(c, err.Error())
	}

	company, err := h.companyUC.GetCompany(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, company, "")
}

func (h *CompanyHandler) GetCompanies(c echo.Context) error {
	companies, err := h.companyUC.ListCompanies(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, companies, "")
}
