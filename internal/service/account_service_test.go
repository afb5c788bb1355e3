package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

func newTestAccountService(directory repository.UserDirectory) *AccountService {
	return NewAccountService(directory, auth.NewHasher(bcrypt.MinCost, 2), nil)
}

func seedUser(t *testing.T, directory *memoryDirectory, username, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$04$notimportantforthistest000000000000000000000000000000",
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	}
	require.NoError(t, directory.Create(context.Background(), user))
	return user
}

func TestAdminPatchRoleMapping(t *testing.T) {
	tests := []struct {
		name         string
		roleName     string
		wantRoleID   int32
		statusName   string
		wantStatusID int32
	}{
		{name: "exact names", roleName: "admin", wantRoleID: domain.RoleIDAdmin, statusName: "banned", wantStatusID: domain.StatusIDBanned},
		{name: "mixed case and whitespace", roleName: "ADMIN ", wantRoleID: domain.RoleIDAdmin, statusName: " Restricted", wantStatusID: domain.StatusIDRestricted},
		{name: "unknown names fall back to least privilege", roleName: "superuser", wantRoleID: domain.RoleIDUser, statusName: "frozen", wantStatusID: domain.StatusIDActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := newMemoryDirectory()
			svc := newTestAccountService(directory)
			admin := seedUser(t, directory, "root", "root@x.com")
			target := seedUser(t, directory, "bob", "bob@x.com")

			err := svc.AdminPatchUser(context.Background(), admin.ID, target.ID, AdminPatch{
				RoleName:   &tt.roleName,
				StatusName: &tt.statusName,
			})
			require.NoError(t, err)

			patch := directory.patches[target.ID]
			require.NotNil(t, patch.RoleID)
			require.NotNil(t, patch.StatusID)
			assert.Equal(t, tt.wantRoleID, *patch.RoleID)
			assert.Equal(t, tt.wantStatusID, *patch.StatusID)
		})
	}
}

func TestAdminPatchMissingUser(t *testing.T) {
	directory := newMemoryDirectory()
	svc := newTestAccountService(directory)
	admin := seedUser(t, directory, "root", "root@x.com")

	username := "ghost"
	err := svc.AdminPatchUser(context.Background(), admin.ID, domain.Identity(404), AdminPatch{Username: &username})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestAdminPatchRehashesPassword(t *testing.T) {
	directory := newMemoryDirectory()
	hasher := auth.NewHasher(bcrypt.MinCost, 2)
	svc := NewAccountService(directory, hasher, nil)
	admin := seedUser(t, directory, "root", "root@x.com")
	target := seedUser(t, directory, "bob", "bob@x.com")

	password := "new-password"
	err := svc.AdminPatchUser(context.Background(), admin.ID, target.ID, AdminPatch{Password: &password})
	require.NoError(t, err)

	patch := directory.patches[target.ID]
	require.NotNil(t, patch.PasswordHash)
	assert.NotEqual(t, password, *patch.PasswordHash)
	assert.True(t, hasher.Verify(context.Background(), *patch.PasswordHash, password))
}

func TestUpdateProfile(t *testing.T) {
	directory := newMemoryDirectory()
	svc := newTestAccountService(directory)
	user := seedUser(t, directory, "alice", "a@x.com")

	username := "alice2"
	err := svc.UpdateProfile(context.Background(), user.ID, ProfilePatch{Username: &username})
	require.NoError(t, err)

	updated, err := svc.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	directory := newMemoryDirectory()
	svc := newTestAccountService(directory)
	seedUser(t, directory, "alice", "a@x.com")
	bob := seedUser(t, directory, "bob", "bob@x.com")

	email := "a@x.com"
	err := svc.UpdateProfile(context.Background(), bob.ID, ProfilePatch{Email: &email})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "BAD_REQUEST"))
}

func TestProfileMissingUser(t *testing.T) {
	svc := newTestAccountService(newMemoryDirectory())

	_, err := svc.Profile(context.Background(), domain.Identity(1))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestListUsers(t *testing.T) {
	directory := newMemoryDirectory()
	svc := newTestAccountService(directory)

	_, err := svc.ListUsers(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))

	for _, seed := range []struct{ username, email string }{
		{"u1", "u1@x.com"}, {"u2", "u2@x.com"}, {"u3", "u3@x.com"},
		{"u4", "u4@x.com"}, {"u5", "u5@x.com"}, {"u6", "u6@x.com"},
	} {
		seedUser(t, directory, seed.username, seed.email)
	}

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	// listing is capped to the first page
	assert.Len(t, users, 5)
	assert.Equal(t, domain.Identity(1), users[0].ID)
}
