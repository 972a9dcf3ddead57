// Package auth pairs the CLI with a bridge and reports the issued API key.
package auth

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/huecli/internal/constants"
	"github.com/wheelibin/huecli/internal/hue"
)

const usernamePrompt = "Please enter a username"
const buttonPrompt = "Please press the Hue button in order to get the token"

type hueAPIService interface {
	CreateUser(ctx context.Context, username string) ([]byte, error)
}

type prompter interface {
	Prompt(label string) (string, error)
	Confirm(label string) (bool, error)
}

type printer interface {
	JSON(body []byte) error
	Success(msg string)
	Error(msg string)
	Warning(msg string)
}

type Flow struct {
	logger   *log.Logger
	api      hueAPIService
	prompter prompter
	printer  printer
	verbose  bool
}

func NewFlow(logger *log.Logger, api hueAPIService, prompter prompter, printer printer, verbose bool) *Flow {
	return &Flow{logger: logger, api: api, prompter: prompter, printer: printer, verbose: verbose}
}

// Run asks for a username and the link button press, then requests a key.
// The returned code is the process exit code.
func (f *Flow) Run(ctx context.Context) (int, error) {

	user, err := f.prompter.Prompt(usernamePrompt)
	if err != nil {
		return constants.ExitFailure, err
	}
	if utf8.RuneCountInString(user) > constants.MaxUsernameLength {
		f.printer.Error("Error: Username too long.")
		return constants.ExitUsernameTooLong, nil
	}

	pressed, err := f.prompter.Confirm(buttonPrompt)
	if err != nil {
		return constants.ExitFailure, err
	}
	if !pressed {
		f.logger.Debug("link button not confirmed, nothing to do")
		return constants.ExitOK, nil
	}

	body, err := f.api.CreateUser(ctx, user)
	if err != nil {
		if body == nil {
			return constants.ExitFailure, err
		}
		// the bridge answered; its body says what went wrong
		f.logger.Warn("auth request failed", "err", err)
	}

	if f.verbose {
		if err := f.printer.JSON(body); err != nil {
			return constants.ExitFailure, err
		}
		return constants.ExitOK, nil
	}

	resp, ok := ParseAuthResponse(body)
	switch {
	case !ok:
		f.logger.Warn("unexpected auth response", "body", string(body))
	case resp.Error != nil:
		f.printer.Error("Error: " + resp.Error.Description)
		return constants.ExitAuthError, nil
	case resp.Success != nil:
		f.printer.Success("Your token: " + resp.Success.Username)
		return constants.ExitOK, nil
	}

	f.printer.Warning("unexpected output.")
	return constants.ExitUnexpectedAuthResponse, nil
}

// ParseAuthResponse returns the first element of the bridge's response array.
func ParseAuthResponse(body []byte) (hue.AuthResponse, bool) {
	var responses []hue.AuthResponse
	if err := json.Unmarshal(body, &responses); err != nil || len(responses) == 0 {
		return hue.AuthResponse{}, false
	}
	return responses[0], true
}
