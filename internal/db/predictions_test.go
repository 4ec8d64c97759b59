package db

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForStorage(t *testing.T) {
	short := "a short resume"
	assert.Equal(t, short, TruncateForStorage(short))

	long := strings.Repeat("x", 1500)
	truncated := TruncateForStorage(long)
	assert.Len(t, truncated, maxStoredTextLength)

	assert.Equal(t, "", TruncateForStorage(""))
}

func TestPersistenceError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &PersistenceError{Op: "save prediction", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "save prediction")
	assert.Contains(t, err.Error(), "connection refused")
}
