package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/pkg/errs"
)

func TestNewRespondToOfferCommand_ValidAccept(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewRespondToOfferCommand(id, commands.DecisionAccept, 2800, "", testNow)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.MatchID())
	assert.Equal(t, commands.DecisionAccept, cmd.Decision())
	assert.InDelta(t, 2800, cmd.Rate(), 0)
	assert.Empty(t, cmd.Reason())
	assert.True(t, testNow.Equal(cmd.Now()))
}

func TestNewRespondToOfferCommand_ValidReject(t *testing.T) {
	cmd, err := commands.NewRespondToOfferCommand(
		kernel.NewUUID(), commands.DecisionReject, 0, match.ReasonRateTooLow, testNow)

	require.NoError(t, err)
	assert.Equal(t, commands.DecisionReject, cmd.Decision())
	assert.Equal(t, match.ReasonRateTooLow, cmd.Reason())
}

func TestNewRespondToOfferCommand_InvalidMatchID(t *testing.T) {
	_, err := commands.NewRespondToOfferCommand(kernel.UUID{}, commands.DecisionAccept, 0, "", testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRespondToOfferCommand_UnknownDecision(t *testing.T) {
	_, err := commands.NewRespondToOfferCommand(kernel.NewUUID(), commands.Decision("maybe"), 0, "", testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "decision")
}

func TestNewRespondToOfferCommand_MissingDecision(t *testing.T) {
	_, err := commands.NewRespondToOfferCommand(kernel.NewUUID(), "", 0, "", testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "decision")
}

func TestNewRespondToOfferCommand_RejectWithoutReason(t *testing.T) {
	_, err := commands.NewRespondToOfferCommand(kernel.NewUUID(), commands.DecisionReject, 0, "", testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "rejectionReason")
}

func TestNewRespondToOfferCommand_RejectWithUnknownReason(t *testing.T) {
	_, err := commands.NewRespondToOfferCommand(
		kernel.NewUUID(), commands.DecisionReject, 0, match.RejectionReason("vibes"), testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "rejectionReason")
}

func TestNewRespondToOfferCommand_AcceptWithReason(t *testing.T) {
	_, err := commands.NewRespondToOfferCommand(
		kernel.NewUUID(), commands.DecisionAccept, 0, match.ReasonOther, testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "reason")
}

func TestNewRespondToOfferCommand_NegativeRate(t *testing.T) {
	_, err := commands.NewRespondToOfferCommand(kernel.NewUUID(), commands.DecisionAccept, -1, "", testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "rate")
}

func TestNewRespondToOfferCommand_MissingNow(t *testing.T) {
	_, err := commands.NewRespondToOfferCommand(kernel.NewUUID(), commands.DecisionAccept, 0, "", time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "now")
}

func TestRespondToOfferCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.RespondToOfferCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRespondToOfferCommandIsNotConstructed)
}
