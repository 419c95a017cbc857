package handler

import (
	"net/http"

	"nms/internal/delivery/http/response"
	"nms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoleHandlerParams holds dependencies for RoleHandler, injected by Fx.
type RoleHandlerParams struct {
	fx.In

	RoleUC usecase.RoleUsecase
}

// RoleHandler serves the admin-only role management endpoints.
type RoleHandler struct {
	roleUC usecase.RoleUsecase
}

func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{
		roleUC: params.RoleUC,
	}
}

func (h *RoleHandler) AddRole(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.RoleDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	role, err := h.roleUC.AddRole(c.Request().Context(), actorID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, role, "Role added successfully")
}

func (h *RoleHandler) UpdateRole(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.RoleDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}
	if err := requireID(input.ID, "roleId"); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if err := h.roleUC.UpdateRole(c.Request().Context(), actorID, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *RoleHandler) GetRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.ValidationError(c, err.Error())
	}

	role, err := h.roleUC.GetRole(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, role, "")
}

func (h *RoleHandler) GetRoles(c echo.Context) error {
	roles, err := h.roleUC.ListRoles(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, roles, "")
}
