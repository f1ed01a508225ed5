package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	// sha256("password")
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", HashPassword("password"))
	assert.Len(t, HashPassword(""), 64)
}

func TestVerifyPassword(t *testing.T) {
	stored := HashPassword("espresso")
	assert.True(t, VerifyPassword(stored, "espresso"))
	assert.False(t, VerifyPassword(stored, "Espresso"))
	assert.False(t, VerifyPassword("", "espresso"))
}
