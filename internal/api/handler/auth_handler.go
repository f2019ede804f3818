package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lineworks/workforce-system/internal/core/domain"
	"github.com/lineworks/workforce-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	EmployeeNumber string `json:"employee_number" validate:"required"`
	Password       string `json:"password"        validate:"required,min=8"`
	Name           string `json:"name"            validate:"required"`
	Role           string `json:"role"            validate:"required,oneof=ADMIN MANAGER WORKER"`
	LicensePhoto   string `json:"license_photo"`
}

type loginRequest struct {
	EmployeeNumber string `json:"employee_number" validate:"required"`
	Password       string `json:"password"        validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// Register creates a new user account. The first account ever created needs
// no token (bootstrap); afterwards only ADMIN callers may register users.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	actor, err := ctxOptionalActor(c)
	if err != nil {
		return err
	}
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), actor, ports.RegisterInput{
		EmployeeNumber: req.EmployeeNumber,
		Password:       req.Password,
		Name:           req.Name,
		Role:           req.Role,
		LicensePhoto:   req.LicensePhoto,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.EmployeeNumber, req.Password)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, authResponse{Token: token, User: user})
}
