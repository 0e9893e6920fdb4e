package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-job-tracker/internal/model"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func testPrincipal(email string) model.Principal {
	return model.NewPrincipal(model.User{
		ID:    "u-1",
		Name:  "Jane Doe",
		Email: email,
		Roles: []model.Role{model.RoleUser},
	})
}

func TestTokenService_IssueValidateRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(testPrincipal("jane@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// A freshly issued token is a well-formed three-segment JWT and
	// validates immediately.
	assert.Len(t, strings.Split(token, "."), 3)
	assert.True(t, svc.Validate(token))

	subject, err := svc.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", subject)
}

func TestTokenService_ValidateExpired(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Minute)

	token, err := svc.Issue(testPrincipal("jane@example.com"))
	require.NoError(t, err)

	assert.False(t, svc.Validate(token))

	_, err = svc.ExtractSubject(token)
	assert.Error(t, err)
}

func TestTokenService_ValidateWrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, time.Hour)
	validator := NewTokenService(strings.Repeat("x", 64), time.Hour)

	token, err := issuer.Issue(testPrincipal("jane@example.com"))
	require.NoError(t, err)

	assert.False(t, validator.Validate(token))
}

func TestTokenService_ValidateMalformed(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	for _, tokenString := range []string{
		"",
		"   ",
		"not-a-token",
		"only.two",
		"a.b.c",
		"header.payload.signature.extra",
	} {
		assert.False(t, svc.Validate(tokenString), "token %q should not validate", tokenString)
	}
}

func TestTokenService_ValidateTamperedPayload(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(testPrincipal("jane@example.com"))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Swapping the payload invalidates the signature.
	other, err := svc.Issue(testPrincipal("mallory@example.com"))
	require.NoError(t, err)
	otherParts := strings.Split(other, ".")

	tampered := parts[0] + "." + otherParts[1] + "." + parts[2]
	assert.False(t, svc.Validate(tampered))
}
