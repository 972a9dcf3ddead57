package auth_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wheelibin/huecli/internal/auth"
	"github.com/wheelibin/huecli/internal/constants"
	"github.com/wheelibin/huecli/internal/display"
	"github.com/wheelibin/huecli/mocks"
)

func newFlow(t *testing.T, api *mocks.MockAuthHueAPIService, prompter *mocks.MockAuthPrompter, verbose bool) (*auth.Flow, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	return auth.NewFlow(logger, api, prompter, display.NewPrinter(out, display.ColorNever), verbose), out
}

func Test_Run(t *testing.T) {

	t.Run("success: should print the token and exit 0", func(t *testing.T) {
		// arrange
		api := mocks.NewMockAuthHueAPIService(t)
		prompter := mocks.NewMockAuthPrompter(t)
		prompter.On("Prompt", mock.Anything).Return("kitchen", nil)
		prompter.On("Confirm", mock.Anything).Return(true, nil)
		api.On("CreateUser", mock.Anything, "kitchen").Return([]byte(`[{"success":{"username":"abc123"}}]`), nil)
		flow, out := newFlow(t, api, prompter, false)

		// act
		code, err := flow.Run(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, constants.ExitOK, code)
		assert.Equal(t, "Your token: abc123\n", out.String())
	})

	t.Run("bridge error: should print the description and exit with the auth error code", func(t *testing.T) {
		api := mocks.NewMockAuthHueAPIService(t)
		prompter := mocks.NewMockAuthPrompter(t)
		prompter.On("Prompt", mock.Anything).Return("kitchen", nil)
		prompter.On("Confirm", mock.Anything).Return(true, nil)
		api.On("CreateUser", mock.Anything, "kitchen").Return([]byte(`[{"error":{"type":101,"address":"","description":"link button not pressed"}}]`), nil)
		flow, out := newFlow(t, api, prompter, false)

		code, err := flow.Run(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, constants.ExitAuthError, code)
		assert.Equal(t, "Error: link button not pressed\n", out.String())
	})

	for _, body := range []string{`[{"other":{}}]`, `[]`, `{"success":{"username":"x"}}`, `garbage`} {
		t.Run("unexpected response "+body+": should warn and exit 4", func(t *testing.T) {
			api := mocks.NewMockAuthHueAPIService(t)
			prompter := mocks.NewMockAuthPrompter(t)
			prompter.On("Prompt", mock.Anything).Return("kitchen", nil)
			prompter.On("Confirm", mock.Anything).Return(true, nil)
			api.On("CreateUser", mock.Anything, "kitchen").Return([]byte(body), nil)
			flow, out := newFlow(t, api, prompter, false)

			code, err := flow.Run(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, constants.ExitUnexpectedAuthResponse, code)
			assert.Equal(t, "unexpected output.\n", out.String())
		})
	}

	t.Run("verbose: should print the raw response and exit 0", func(t *testing.T) {
		api := mocks.NewMockAuthHueAPIService(t)
		prompter := mocks.NewMockAuthPrompter(t)
		prompter.On("Prompt", mock.Anything).Return("kitchen", nil)
		prompter.On("Confirm", mock.Anything).Return(true, nil)
		api.On("CreateUser", mock.Anything, "kitchen").Return([]byte(`[{"error":{"description":"link button not pressed"}}]`), nil)
		flow, out := newFlow(t, api, prompter, true)

		code, err := flow.Run(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, constants.ExitOK, code)
		assert.Contains(t, out.String(), "\"description\": \"link button not pressed\"")
	})

	t.Run("username too long: should exit 3 without calling the bridge", func(t *testing.T) {
		api := mocks.NewMockAuthHueAPIService(t)
		prompter := mocks.NewMockAuthPrompter(t)
		prompter.On("Prompt", mock.Anything).Return(strings.Repeat("a", 33), nil)
		flow, out := newFlow(t, api, prompter, false)

		code, err := flow.Run(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, constants.ExitUsernameTooLong, code)
		assert.Equal(t, "Error: Username too long.\n", out.String())
		api.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		prompter.AssertNotCalled(t, "Confirm", mock.Anything)
	})

	t.Run("username of 32 multi-byte characters: should be accepted", func(t *testing.T) {
		user := strings.Repeat("é", 32)
		api := mocks.NewMockAuthHueAPIService(t)
		prompter := mocks.NewMockAuthPrompter(t)
		prompter.On("Prompt", mock.Anything).Return(user, nil)
		prompter.On("Confirm", mock.Anything).Return(true, nil)
		api.On("CreateUser", mock.Anything, user).Return([]byte(`[{"success":{"username":"k"}}]`), nil)
		flow, _ := newFlow(t, api, prompter, false)

		code, err := flow.Run(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, constants.ExitOK, code)
	})

	t.Run("button not confirmed: should exit 0 without calling the bridge", func(t *testing.T) {
		api := mocks.NewMockAuthHueAPIService(t)
		prompter := mocks.NewMockAuthPrompter(t)
		prompter.On("Prompt", mock.Anything).Return("kitchen", nil)
		prompter.On("Confirm", mock.Anything).Return(false, nil)
		flow, out := newFlow(t, api, prompter, false)

		code, err := flow.Run(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, constants.ExitOK, code)
		assert.Empty(t, out.String())
		api.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("error status with an error body: should print the description and exit with the auth error code", func(t *testing.T) {
		api := mocks.NewMockAuthHueAPIService(t)
		prompter := mocks.NewMockAuthPrompter(t)
		prompter.On("Prompt", mock.Anything).Return("kitchen", nil)
		prompter.On("Confirm", mock.Anything).Return(true, nil)
		api.On("CreateUser", mock.Anything, "kitchen").Return([]byte(`[{"error":{"description":"link button not pressed"}}]`), fmt.Errorf("unexpected status 403 Forbidden"))
		flow, out := newFlow(t, api, prompter, false)

		code, err := flow.Run(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, constants.ExitAuthError, code)
		assert.Equal(t, "Error: link button not pressed\n", out.String())
	})

	t.Run("error status, verbose: should still print the body", func(t *testing.T) {
		api := mocks.NewMockAuthHueAPIService(t)
		prompter := mocks.NewMockAuthPrompter(t)
		prompter.On("Prompt", mock.Anything).Return("kitchen", nil)
		prompter.On("Confirm", mock.Anything).Return(true, nil)
		api.On("CreateUser", mock.Anything, "kitchen").Return([]byte(`[{"error":{"description":"link button not pressed"}}]`), fmt.Errorf("unexpected status 403 Forbidden"))
		flow, out := newFlow(t, api, prompter, true)

		code, err := flow.Run(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, constants.ExitOK, code)
		assert.Contains(t, out.String(), `"description": "link button not pressed"`)
	})

	t.Run("transport error: should return it", func(t *testing.T) {
		api := mocks.NewMockAuthHueAPIService(t)
		prompter := mocks.NewMockAuthPrompter(t)
		prompter.On("Prompt", mock.Anything).Return("kitchen", nil)
		prompter.On("Confirm", mock.Anything).Return(true, nil)
		api.On("CreateUser", mock.Anything, "kitchen").Return(nil, fmt.Errorf("connection refused"))
		flow, _ := newFlow(t, api, prompter, false)

		code, err := flow.Run(context.Background())

		assert.EqualError(t, err, "connection refused")
		assert.Equal(t, constants.ExitFailure, code)
	})
}

func Test_ParseAuthResponse(t *testing.T) {
	resp, ok := auth.ParseAuthResponse([]byte(`[{"success":{"username":"abc123"}},{"error":{"description":"ignored"}}]`))

	assert.True(t, ok)
	assert.Equal(t, "abc123", resp.Success.Username)
	assert.Nil(t, resp.Error)
}
