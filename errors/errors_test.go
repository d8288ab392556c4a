package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecovered(t *testing.T) {
	req := require.New(t)
	cause := fmt.Errorf("nil map write")

	fromError := Recovered(cause)
	req.ErrorIs(fromError, ErrHandlerFailure)
	req.ErrorIs(fromError, cause)

	fromValue := Recovered("boom")
	req.ErrorIs(fromValue, ErrHandlerFailure)
	req.Contains(fromValue.Error(), "boom")
}
