package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testCommand struct {
	Fail bool
}

func (c testCommand) Validate() error {
	if c.Fail {
		return errors.New("bad command")
	}
	return nil
}

func TestSend_UnregisteredCommand(t *testing.T) {
	b := NewCommandBus()

	err := b.Send(context.Background(), testCommand{})
	assert.ErrorIs(t, err, ErrHandlerNotFound)
}

func TestSend_ValidationFailure(t *testing.T) {
	b := NewCommandBus()
	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(
		func(ctx context.Context, cmd Command) error { return nil },
	)))

	err := b.Send(context.Background(), testCommand{Fail: true})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestRegister_DuplicateRejected(t *testing.T) {
	b := NewCommandBus()
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	require.NoError(t, b.Register(testCommand{}, handler))
	assert.Error(t, b.Register(testCommand{}, handler))
}

func TestLoggingMiddleware_PassesThrough(t *testing.T) {
	b := NewCommandBus()
	logged := LoggingMiddleware(zap.NewNop())

	var called bool
	handlerErr := errors.New("handler failed")
	require.NoError(t, b.Register(testCommand{}, logged(CommandHandlerFunc(
		func(ctx context.Context, cmd Command) error {
			called = true
			return handlerErr
		},
	))))

	err := b.Send(context.Background(), testCommand{})
	assert.True(t, called, "middleware must invoke the wrapped handler")
	assert.ErrorIs(t, err, handlerErr)
}
