package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func removeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.Remove(path))
}
