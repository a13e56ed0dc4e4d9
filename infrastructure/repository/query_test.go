package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "NE-3-2024-05-", escapeLike("NE-3-2024-05-"))
	assert.Equal(t, `RINO\_X\%`, escapeLike("RINO_X%"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}
