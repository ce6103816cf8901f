package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeInt(t *testing.T) {
	assert.Equal(t, 1234, SafeInt("1234"))
	assert.Equal(t, 1234, SafeInt(" 1234 "))
	assert.Equal(t, 1234, SafeInt("1234.0"))
	assert.Equal(t, 0, SafeInt(""))
	assert.Equal(t, 0, SafeInt("abc"))
}

func TestCleanUpper(t *testing.T) {
	assert.Equal(t, "SP", CleanUpper(" sp "))
	assert.Equal(t, "SÃO PAULO", CleanUpper("são paulo"))
	assert.Equal(t, "", CleanUpper("   "))
}
