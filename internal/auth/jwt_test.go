package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskhub/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	secret := []byte("test-secret")
	token, err := auth.GenerateToken(42, secret)
	assert.Nil(err)
	assert.NotEmpty(token)

	userID, err := auth.ValidateToken(token, secret)
	assert.Nil(err)
	assert.Equal(42, userID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	token, err := auth.GenerateToken(42, []byte("secret-a"))
	assert.Nil(err)

	_, err = auth.ValidateToken(token, []byte("secret-b"))
	assert.NotNil(err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	_, err := auth.ValidateToken("not-a-token", []byte("secret"))
	assert.NotNil(err)
}
