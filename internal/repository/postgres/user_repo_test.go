package postgres

import (
	"strings"
	"testing"

	"vos-erp-service/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateAssignmentsNeverTouchesSessionToken(t *testing.T) {
	// Fill every field the update DTO exposes and check the generated SET
	// clause: session_token must not be writable through administrative
	// updates, or a blanket user edit would silently revoke a live session.
	admin := true
	roleID := int64(2)
	req := &user.UpdateUserRequest{
		Email:      strPtr("b@x.com"),
		Password:   strPtr("new-password-123"),
		FirstName:  strPtr("Grace"),
		MiddleName: strPtr("B"),
		LastName:   strPtr("Hopper"),
		Contact:    strPtr("0917"),
		Province:   strPtr("Cebu"),
		City:       strPtr("Cebu City"),
		Barangay:   strPtr("Lahug"),
		Department: strPtr("Engineering"),
		Position:   strPtr("Lead"),
		SSS:        strPtr("sss"),
		PhilHealth: strPtr("ph"),
		TIN:        strPtr("tin"),
		Tags:       []string{"field", "ops"},
		IsAdmin:    &admin,
		RoleID:     &roleID,
		RFID:       strPtr("RF-001"),
		Status:     strPtr("inactive"),
	}

	cols, args := updateAssignments(req, "bcrypt-hash-placeholder")
	require.NotEmpty(t, cols)
	assert.Len(t, args, len(cols))

	joined := strings.Join(cols, ", ")
	assert.NotContains(t, joined, "session_token")
	assert.Contains(t, joined, "user_password")
	assert.Contains(t, joined, "status")
}

func TestUpdateAssignmentsSkipsAbsentFields(t *testing.T) {
	req := &user.UpdateUserRequest{Contact: strPtr("0918")}

	cols, args := updateAssignments(req, "")
	require.Len(t, cols, 1)
	assert.Equal(t, "user_contact = $1", cols[0])
	assert.Equal(t, []interface{}{"0918"}, args)
}

func TestUpdateAssignmentsEmptyRequest(t *testing.T) {
	cols, args := updateAssignments(&user.UpdateUserRequest{}, "")
	assert.Empty(t, cols)
	assert.Empty(t, args)
}
