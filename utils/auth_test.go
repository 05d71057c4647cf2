package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowbr/leadflow_end/models"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed := HashPassword("s3cret!")

	assert.True(t, strings.HasPrefix(hashed, "sha256$"))
	assert.True(t, VerifyPassword("s3cret!", hashed))
	assert.False(t, VerifyPassword("wrong", hashed))
	assert.False(t, VerifyPassword("s3cret!", "not-a-hash"))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	a := HashPassword("same")
	b := HashPassword("same")
	assert.NotEqual(t, a, b, "two hashes of the same password should differ by salt")
	assert.True(t, VerifyPassword("same", a))
	assert.True(t, VerifyPassword("same", b))
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		Email:            "jane@acme.com",
		Name:             "Jane",
		SubscriptionType: models.SubscriptionTRIAL,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, "jane@acme.com", claims["email"])
	assert.Equal(t, "trial", claims["role"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("this.is.garbage")
	assert.Error(t, err)
}

func TestValidators(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.com"))
	assert.False(t, IsValidEmail("not-an-email"))

	assert.True(t, IsValidURL("https://acme.com"))
	assert.False(t, IsValidURL("acme.com"))
	assert.False(t, IsValidURL("ftp://acme.com"))

	assert.True(t, IsValidPhone("+55 11 91234-5678"))
	assert.False(t, IsValidPhone("abc"))
}
