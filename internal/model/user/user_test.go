package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoleAndStatus(t *testing.T) {
	role, err := ParseRole(" expert ")
	assert.Nil(t, err)
	assert.Equal(t, RoleExpert, role)

	_, err = ParseRole("superuser")
	assert.NotNil(t, err)

	status, err := ParseStatus("Banned")
	assert.Nil(t, err)
	assert.Equal(t, StatusBanned, status)

	_, err = ParseStatus("deleted")
	assert.NotNil(t, err)
}

func TestUser_Helpers(t *testing.T) {
	email := "an@example.com"
	u := &User{FirstName: "Người dùng", LastName: "Ẩn danh", Status: StatusActive}

	assert.Equal(t, "", u.EmailValue())
	assert.Equal(t, "Người dùng Ẩn danh", u.FullName())
	assert.True(t, u.Enabled())

	u.Email = &email
	u.Status = StatusInactive
	assert.Equal(t, email, u.EmailValue())
	assert.False(t, u.Enabled())

	assert.Equal(t, "mixed@case.com", NormalizeEmail("  Mixed@Case.COM "))
}
