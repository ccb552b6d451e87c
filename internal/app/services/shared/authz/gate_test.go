package authz

import (
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowsResource(t *testing.T) {
	owner := Principal{ID: "user-1", Role: constvars.RoleUser}
	stranger := Principal{ID: "user-2", Role: constvars.RoleUser}
	admin := Principal{ID: "admin-1", Role: constvars.RoleAdmin}

	property := &models.Property{ID: "prop-1", UserID: "user-1"}
	search := &models.Search{ID: "search-1", UserID: "user-1"}
	favorite := &models.Favorite{ID: "fav-1", UserID: "user-1"}

	t.Run("Owner Passes", func(t *testing.T) {
		assert.True(t, AllowsResource(owner, property))
		assert.True(t, AllowsResource(owner, search))
		assert.True(t, AllowsResource(owner, favorite))
	})

	t.Run("Non-Owner Denied", func(t *testing.T) {
		assert.False(t, AllowsResource(stranger, property))
		assert.False(t, AllowsResource(stranger, search))
		assert.False(t, AllowsResource(stranger, favorite))
	})

	t.Run("Admin Passes Everything", func(t *testing.T) {
		assert.True(t, AllowsResource(admin, property))
		assert.True(t, AllowsResource(admin, search))
		assert.True(t, AllowsResource(admin, favorite))
	})
}

func TestAllowsUserScope(t *testing.T) {
	principal := Principal{ID: "user-1", Role: constvars.RoleUser}
	admin := Principal{ID: "admin-1", Role: constvars.RoleAdmin}

	t.Run("Self Passes", func(t *testing.T) {
		assert.True(t, AllowsUserScope(principal, "user-1"))
	})

	t.Run("Other User Denied", func(t *testing.T) {
		assert.False(t, AllowsUserScope(principal, "user-2"))
	})

	t.Run("Admin Passes Any User", func(t *testing.T) {
		assert.True(t, AllowsUserScope(admin, "user-1"))
		assert.True(t, AllowsUserScope(admin, "user-2"))
	})
}

func TestAllowsAdmin(t *testing.T) {
	assert.False(t, AllowsAdmin(Principal{ID: "user-1", Role: constvars.RoleUser}))
	assert.True(t, AllowsAdmin(Principal{ID: "admin-1", Role: constvars.RoleAdmin}))
}

func TestFromSession(t *testing.T) {
	session := &models.Session{SessionID: "s-1", UserID: "user-9", RoleName: constvars.RoleAdmin}
	principal := FromSession(session)
	assert.Equal(t, "user-9", principal.ID)
	assert.True(t, principal.IsAdmin())
}

func TestUserOwnsItself(t *testing.T) {
	user := &models.User{ID: "user-5", Role: constvars.RoleUser}
	assert.True(t, AllowsResource(Principal{ID: "user-5", Role: constvars.RoleUser}, user))
	assert.False(t, AllowsResource(Principal{ID: "user-6", Role: constvars.RoleUser}, user))
}
