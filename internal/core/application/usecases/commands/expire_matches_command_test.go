package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/pkg/errs"
)

func TestNewExpireMatchesCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewExpireMatchesCommand(testNow, 6*time.Hour)

	require.NoError(t, err)
	assert.True(t, testNow.Equal(cmd.Now()))
	assert.Equal(t, 6*time.Hour, cmd.OlderThan())
	assert.True(t, testNow.Add(-6*time.Hour).Equal(cmd.Cutoff()))
}

func TestNewExpireMatchesCommand_DefaultsOlderThan(t *testing.T) {
	cmd, err := commands.NewExpireMatchesCommand(testNow, 0)

	require.NoError(t, err)
	assert.Equal(t, commands.DefaultOfferTTL, cmd.OlderThan())
	assert.True(t, testNow.Add(-commands.DefaultOfferTTL).Equal(cmd.Cutoff()))
}

func TestNewExpireMatchesCommand_NegativeOlderThan(t *testing.T) {
	_, err := commands.NewExpireMatchesCommand(testNow, -time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "olderThan")
}

func TestNewExpireMatchesCommand_MissingNow(t *testing.T) {
	_, err := commands.NewExpireMatchesCommand(time.Time{}, time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "now")
}

func TestExpireMatchesCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.ExpireMatchesCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrExpireMatchesCommandIsNotConstructed)
}
