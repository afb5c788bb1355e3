package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

const recentActivityLimit = 20

// AdminHandler exposes role-gated administration endpoints.
type AdminHandler struct {
	accounts *service.AccountService
	activity *service.ActivityService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(accounts *service.AccountService, activity *service.ActivityService) *AdminHandler {
	return &AdminHandler{accounts: accounts, activity: activity}
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.accounts.ListUsers(c.Context())
	if err != nil {
		return err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// PatchUser handles PATCH /admin/users/:id.
func (h *AdminHandler) PatchUser(c *fiber.Ctx) error {
	target, err := pathIdentity(c)
	if err != nil {
		return err
	}
	actor, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.AdminPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	patch := service.AdminPatch{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		RoleName:   req.RoleName,
		StatusName: req.AccountStatus,
	}
	if err := h.accounts.AdminPatchUser(c.Context(), actor, target, patch); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "user updated"}})
}

// RecentActivity handles GET /admin/activity.
func (h *AdminHandler) RecentActivity(c *fiber.Ctx) error {
	entries, err := h.activity.Recent(c.Context(), recentActivityLimit)
	if err != nil {
		return apperrors.MapError(err)
	}

	responses := make([]dto.ActivityEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.ActivityEntryResponse{
			ID:        entry.ID,
			UserID:    int64(entry.UserID),
			Action:    entry.Action,
			CreatedAt: entry.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": responses})
}
