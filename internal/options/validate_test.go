package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSingleInputSource(t *testing.T) {
	assert.NoError(t, ValidateSingleInputSource("none", "many", true, false, false))
	assert.NoError(t, ValidateSingleInputSource("none", "many", false, true))

	err := ValidateSingleInputSource("none", "many", false, false)
	require.Error(t, err)
	assert.EqualError(t, err, "none")

	err = ValidateSingleInputSource("none", "many", true, true, false)
	require.Error(t, err)
	assert.EqualError(t, err, "many")
}
