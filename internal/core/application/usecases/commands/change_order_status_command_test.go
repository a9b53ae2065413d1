package commands_test

import (
	"testing"

	"okada/internal/core/application/usecases/commands"
	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	riderID := int64(5)
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.RiderAssigned, &riderID, "  ok ", admin, ptr(int64(3)))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(42), cmd.OrderID())
	assert.Equal(t, order.RiderAssigned, cmd.Status())
	assert.Equal(t, int64(5), *cmd.RiderID())
	assert.Equal(t, "ok", cmd.Notes())
	assert.Equal(t, admin, cmd.Actor())
	assert.Equal(t, int64(3), *cmd.ExpectedVersion())

	riderID = 6
	assert.Equal(t, int64(5), *cmd.RiderID(), "command keeps its own copy")
}

func TestNewChangeOrderStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(0, order.Unknown, ptr(int64(-1)), "", order.Actor{Type: order.ActorAdmin}, ptr(int64(0)))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewChangeOrderStatusCommand_OptionalFields(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Confirmed, nil, "", order.SystemActor(), nil)

	require.NoError(t, err)
	assert.Nil(t, cmd.RiderID())
	assert.Nil(t, cmd.ExpectedVersion())
}

func TestChangeOrderStatusCommand_NotConstructed(t *testing.T) {
	var cmd commands.ChangeOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
