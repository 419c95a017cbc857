package handler

import (
	"net/http"

	"nms/internal/delivery/http/response"
	"nms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
	}
}

// Register handles POST /api/account/register. Only administrators reach it.
func (h *AccountHandler) Register(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.RegisterDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	user, err := h.accountUC.Register(c.Request().Context(), actorID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User registered successfully")
}

// Login handles POST /api/account/login.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginDTO
	if err := bindRequest(c, &input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	output, err := h.accountUC.Login(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}
