package sync

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalInt(t *testing.T) {
	n, err := OptionalInt("maskId", "")
	require.NoError(t, err)
	require.Nil(t, n)

	n, err = OptionalInt("maskId", "  12 ")
	require.NoError(t, err)
	require.Equal(t, 12, *n)

	_, err = OptionalInt("maskId", "abc")
	require.Error(t, err)
}

func TestRequiredFloat(t *testing.T) {
	_, err := RequiredFloat("rating", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "required")

	f, err := RequiredFloat("rating", "4.5")
	require.NoError(t, err)
	require.Equal(t, 4.5, f)

	_, err = RequiredFloat("rating", "five")
	require.Error(t, err)
}

func TestRequiredInt(t *testing.T) {
	_, err := RequiredInt("maskId", " ")
	require.Error(t, err)

	n, err := RequiredInt("maskId", "7")
	require.NoError(t, err)
	require.Equal(t, 7, n)
}
