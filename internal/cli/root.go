// Package cli wires the huecli command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wheelibin/huecli/internal/auth"
	"github.com/wheelibin/huecli/internal/config"
	"github.com/wheelibin/huecli/internal/constants"
	"github.com/wheelibin/huecli/internal/display"
	"github.com/wheelibin/huecli/internal/hue"
	"github.com/wheelibin/huecli/internal/models"
	"github.com/wheelibin/huecli/internal/prompt"
	"gopkg.in/natefinch/lumberjack.v2"
)

// App holds the process level dependencies. Zero values fall back to the
// real terminal, resolver and HTTP client.
type App struct {
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	Resolver   hue.Resolver
	HTTPClient *http.Client
}

// session is the state of a single invocation.
type session struct {
	app    *App
	viper  *viper.Viper
	cfg    config.Config
	creds  models.Credentials
	logger *log.Logger
	out    *display.Printer
	errOut *display.Printer
	prompt *prompt.Prompter

	configFile string
	logCloser  io.Closer
}

// Run executes the command line and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if a.In == nil {
		a.In = os.Stdin
	}
	if a.Out == nil {
		a.Out = os.Stdout
	}
	if a.Err == nil {
		a.Err = os.Stderr
	}
	if a.HTTPClient == nil {
		a.HTTPClient = &http.Client{}
	}

	s := &session{
		app:    a,
		viper:  config.New(),
		errOut: display.NewPrinter(a.Err, display.ColorAuto),
		prompt: prompt.NewPrompter(a.In, a.Err),
	}
	defer s.close()

	root := s.newRootCmd()
	root.SetArgs(args)
	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return constants.ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			s.errOut.Error("Error: " + exitErr.Err.Error())
		}
		return exitErr.Code
	}

	s.errOut.Error("Error: " + err.Error())
	return constants.ExitFailure
}

func (s *session) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "huecli",
		Short: "A commandline interface, to the Philips Hue",
		Long: `A commandline interface, to the Philips Hue.

Get an API key by pressing the bridge's link button and running:
  huecli --host 192.168.1.20 --auth

Every flag can also be set with a HUE_ environment variable, e.g. HUE_HOST.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
		RunE:              s.runRoot,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&s.configFile, "config", "", "Path to a JSON config `file` (default: $HOME/.config/huecli/config.json)")

	root.AddCommand(
		s.newListCmd(),
		s.newSwitchCmd("on", "Turn a light on", true),
		s.newSwitchCmd("off", "Turn a light off", false),
	)
	return root
}

// setup runs before every command: it loads the configuration, builds the
// logger and resolves the bridge host. Subcommands also need an API key.
func (s *session) setup(cmd *cobra.Command, _ []string) error {
	if err := config.ReadConfig(s.viper, s.configFile); err != nil {
		return err
	}
	cfg, err := config.Load(s.viper, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	s.cfg = cfg

	mode, err := display.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}
	s.out = display.NewPrinter(s.app.Out, mode)
	s.errOut = display.NewPrinter(s.app.Err, mode)

	if err := s.setupLogger(); err != nil {
		return err
	}

	host, err := hue.ValidateHost(cmd.Context(), s.app.Resolver, cfg.Host)
	if err != nil {
		if errors.Is(err, hue.ErrMissingHost) {
			return &ExitError{Code: constants.ExitInvalidHost, Err: fmt.Errorf("%w, check help", err)}
		}
		s.logger.Debug("host lookup failed", "host", cfg.Host, "err", errors.Unwrap(err))
		fmt.Fprint(s.app.Err, cmd.UsageString())
		return &ExitError{Code: constants.ExitInvalidHost, Err: fmt.Errorf("invalid value for '--host': %w", err)}
	}
	s.creds = models.Credentials{Host: host, Key: cfg.Key, Verbose: cfg.Verbose}

	if cmd == cmd.Root() {
		return nil
	}

	switch {
	case cfg.AskKey:
		key, err := s.prompt.PromptHidden("API key")
		if err != nil {
			return err
		}
		s.creds.Key = key
	case cfg.Key == "":
		fmt.Fprint(s.app.Err, cmd.Root().UsageString())
		return &ExitError{Code: constants.ExitFailure, Err: errors.New("need a method to authenticate, use --key or --ask-key")}
	}
	return nil
}

func (s *session) setupLogger() error {
	level, err := log.ParseLevel(s.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", s.cfg.LogLevel, err)
	}

	if s.cfg.LogFile == "" {
		s.logger = log.NewWithOptions(s.app.Err, log.Options{
			Level:  level,
			Prefix: "huecli",
		})
		return nil
	}

	lj := &lumberjack.Logger{
		Filename: s.cfg.LogFile,
		MaxAge:   3,
	}
	s.logCloser = lj
	s.logger = log.NewWithOptions(lj, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
	})
	return nil
}

func (s *session) close() {
	if s.logCloser != nil {
		_ = s.logCloser.Close()
	}
}

// runRoot pairs with the bridge when asked to, otherwise shows the help.
func (s *session) runRoot(cmd *cobra.Command, _ []string) error {
	if !s.cfg.Auth || s.cfg.Key != "" || s.cfg.AskKey {
		return cmd.Help()
	}

	api := hue.NewHueAPIService(s.logger, s.app.HTTPClient, s.creds)
	flow := auth.NewFlow(s.logger, api, s.prompt, s.out, s.creds.Verbose)

	code, err := flow.Run(cmd.Context())
	if err != nil || code != constants.ExitOK {
		return &ExitError{Code: code, Err: err}
	}
	return nil
}
