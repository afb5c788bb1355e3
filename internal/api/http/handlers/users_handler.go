package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// UsersHandler exposes profile endpoints for the account owner.
type UsersHandler struct {
	accounts *service.AccountService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService) *UsersHandler {
	return &UsersHandler{accounts: accounts}
}

// GetProfile handles GET /users/:id. Route access is gated by RequireSelf.
func (h *UsersHandler) GetProfile(c *fiber.Ctx) error {
	id, err := pathIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.Profile(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// PatchProfile handles PATCH /users/:id. Route access is gated by RequireSelf.
func (h *UsersHandler) PatchProfile(c *fiber.Ctx) error {
	id, err := pathIdentity(c)
	if err != nil {
		return err
	}

	var req dto.ProfilePatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	patch := service.ProfilePatch{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.accounts.UpdateProfile(c.Context(), id, patch); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "profile updated"}})
}

// GetRole handles GET /role. The role is resolved fresh from the directory so
// a role change is visible here immediately.
func (h *UsersHandler) GetRole(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	user, err := h.accounts.Profile(c.Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(dto.RoleResponse{
		Username: user.Username,
		ID:       domain.RoleID(string(user.Role)),
		RoleName: string(user.Role),
	})
}

func pathIdentity(c *fiber.Ctx) (domain.Identity, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequest("invalid user id", nil)
	}
	return domain.Identity(id), nil
}
