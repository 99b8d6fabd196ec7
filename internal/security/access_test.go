package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
)

func TestCanAccess(t *testing.T) {
	ownerID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	tests := []struct {
		name        string
		caller      Principal
		opts        AccessOptions
		wantAllowed bool
	}{
		{
			name:        "owner allowed",
			caller:      Principal{ID: ownerID, Role: models.RoleUser},
			opts:        AccessOptions{},
			wantAllowed: true,
		},
		{
			name:        "other user denied",
			caller:      Principal{ID: otherID, Role: models.RoleUser},
			opts:        AccessOptions{},
			wantAllowed: false,
		},
		{
			name:        "admin always allowed",
			caller:      Principal{ID: otherID, Role: models.RoleAdmin},
			opts:        AccessOptions{},
			wantAllowed: true,
		},
		{
			name:        "editor allowed when option set",
			caller:      Principal{ID: otherID, Role: models.RoleEditor},
			opts:        AccessOptions{AllowEditor: true},
			wantAllowed: true,
		},
		{
			name:        "editor denied when option unset",
			caller:      Principal{ID: otherID, Role: models.RoleEditor},
			opts:        AccessOptions{},
			wantAllowed: false,
		},
		{
			name:        "editor who owns the resource allowed regardless",
			caller:      Principal{ID: ownerID, Role: models.RoleEditor},
			opts:        AccessOptions{},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAllowed, CanAccess(tt.caller, ownerID, tt.opts))
		})
	}
}

func TestIsModerator(t *testing.T) {
	id := primitive.NewObjectID()

	assert.False(t, IsModerator(Principal{ID: id, Role: models.RoleUser}))
	assert.True(t, IsModerator(Principal{ID: id, Role: models.RoleEditor}))
	assert.True(t, IsModerator(Principal{ID: id, Role: models.RoleAdmin}))
}
