package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-backoffice/api/http/presenter"
	"github.com/artem13815/hr-backoffice/pkg/auth"
	"github.com/artem13815/hr-backoffice/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login opens an operator session.
// @Summary Вход оператора
// @Tags    Авторизация
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "email и пароль"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email и пароль обязательны")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "неверный email или пароль")
		}
		return presenter.Error(c, http.StatusInternalServerError, "не удалось выполнить вход")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"email":     result.Session.Email,
		"sessionId": result.Session.ID.String(),
		"token":     result.Token,
	})
}

// Logout ends the current session; its token stops working immediately.
// @Summary Выход оператора
// @Tags    Авторизация
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid, _ := c.Locals(jwt.LocalSessionID).(string)
	if sid == "" {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить сессию")
	}
	if err := h.useCase.Logout(c.Context(), sid); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "не удалось завершить сессию")
	}
	return c.SendStatus(http.StatusNoContent)
}
