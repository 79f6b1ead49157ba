package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, uint64(6), GCD(12, 18))
	assert.Equal(t, uint64(6), GCD(-12, 18))
	assert.Equal(t, uint64(6), GCD(12, -18))
	assert.Equal(t, uint64(6), GCD(-12, -18))
	assert.Equal(t, uint64(1), GCD(5, 7))
	assert.Equal(t, uint64(7), GCD(0, 7))
	assert.Equal(t, uint64(5), GCD(5, 0))
	assert.Equal(t, uint64(0), GCD(0, 0))
}
