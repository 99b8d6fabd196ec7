package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
	"travelog/internal/security"
	"travelog/internal/utils"
)

func adminFixture(t *testing.T) (AdminService, *fakeUserRepo, *fakeAudit, *models.User, *models.User) {
	t.Helper()
	userRepo := newFakeUserRepo()
	audit := &fakeAudit{}
	admin := userRepo.add(&models.User{DisplayName: "Root", Role: models.RoleAdmin})
	target := userRepo.add(&models.User{DisplayName: "Troll", Role: models.RoleUser})
	return NewAdminService(userRepo, audit, testLogger()), userRepo, audit, admin, target
}

func TestBlockAndUnblockUser(t *testing.T) {
	service, userRepo, audit, admin, target := adminFixture(t)
	caller := security.Principal{ID: admin.ID, Role: models.RoleAdmin}

	blocked, err := service.SetBlocked(context.Background(), caller, target.ID.Hex(), "203.0.113.9", true)
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)
	assert.Equal(t, []string{"blocked:" + target.ID.Hex()}, audit.blocked)

	unblocked, err := service.SetBlocked(context.Background(), caller, target.ID.Hex(), "203.0.113.9", false)
	require.NoError(t, err)
	assert.False(t, unblocked.IsBlocked)
	assert.Equal(t, "unblocked:"+target.ID.Hex(), audit.blocked[1])

	stored, err := userRepo.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsBlocked)
}

func TestBlockSelfRefused(t *testing.T) {
	service, _, audit, admin, _ := adminFixture(t)
	caller := security.Principal{ID: admin.ID, Role: models.RoleAdmin}

	_, err := service.SetBlocked(context.Background(), caller, admin.ID.Hex(), "203.0.113.9", true)

	var authzErr *AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "You cannot block your own account", authzErr.Message)
	assert.Len(t, audit.denied, 1)
	assert.Empty(t, audit.blocked)
}

func TestBlockAnotherAdminRefused(t *testing.T) {
	service, userRepo, _, admin, _ := adminFixture(t)
	otherAdmin := userRepo.add(&models.User{DisplayName: "Root2", Role: models.RoleAdmin})
	caller := security.Principal{ID: admin.ID, Role: models.RoleAdmin}

	_, err := service.SetBlocked(context.Background(), caller, otherAdmin.ID.Hex(), "203.0.113.9", true)

	var authzErr *AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "You cannot block another admin", authzErr.Message)
}

func TestBlockByNonAdminRefused(t *testing.T) {
	service, _, audit, _, target := adminFixture(t)

	for _, role := range []models.UserRole{models.RoleUser, models.RoleEditor} {
		caller := security.Principal{ID: primitive.NewObjectID(), Role: role}
		_, err := service.SetBlocked(context.Background(), caller, target.ID.Hex(), "203.0.113.9", true)
		var authzErr *AuthorizationError
		require.ErrorAs(t, err, &authzErr, "role %s must not block users", role)
	}
	assert.Len(t, audit.denied, 2)
}

func TestBlockUnknownUser(t *testing.T) {
	service, _, _, admin, _ := adminFixture(t)
	caller := security.Principal{ID: admin.ID, Role: models.RoleAdmin}

	_, err := service.SetBlocked(context.Background(), caller, primitive.NewObjectID().Hex(), "203.0.113.9", true)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestListUsersRequiresAdmin(t *testing.T) {
	service, _, _, admin, _ := adminFixture(t)

	params := &utils.PaginationParams{Page: 1, PageSize: 10, Sort: "created_at", Order: "desc"}

	_, _, err := service.ListUsers(context.Background(), security.Principal{ID: primitive.NewObjectID(), Role: models.RoleEditor}, params)
	var authzErr *AuthorizationError
	require.ErrorAs(t, err, &authzErr)

	users, total, err := service.ListUsers(context.Background(), security.Principal{ID: admin.ID, Role: models.RoleAdmin}, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)
}
