package assert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("broken")

func TestThat(t *testing.T) {
	require.NotPanics(t, func() {
		That(true, errBroken, "never")
	})

	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, errBroken)
		require.EqualError(t, err, "assertion failed: broken: slot 7 of 8")
	}()

	That(false, errBroken, "slot %d of %d", 7, 8)
}
