package authorization

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleUser, ParseUserRole("user"))
	assert.Equal(t, RoleUser, ParseUserRole("superuser"))
	assert.False(t, UserRole("").IsValid())
	assert.True(t, RoleAdmin.IsAdmin())
}

func TestIdentityRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUserID(c)
	assert.False(t, ok)
	assert.Equal(t, UserRole(""), CurrentRole(c))

	SetIdentity(c, 7, RoleAdmin)

	id, ok := CurrentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, RoleAdmin, CurrentRole(c))
}
