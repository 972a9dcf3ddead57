package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wheelibin/huecli/internal/constants"
)

// flag names, also used as config file keys and (upper-cased, prefixed) env vars
const (
	KeyAuth     = "auth"
	KeyHost     = "host"
	KeyKey      = "key"
	KeyAskKey   = "ask-key"
	KeyVerbose  = "verbose"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyColor    = "color"
	KeyThrottle = "throttle"
)

type Config struct {
	Auth     bool
	Host     string
	Key      string
	AskKey   bool
	Verbose  bool
	LogLevel string
	LogFile  string
	Color    string
	Throttle time.Duration
}

// New returns a viper instance reading HUE_* environment variables,
// e.g. HUE_ASK_KEY for --ask-key.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// RegisterFlags adds the global flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Bool(KeyAuth, false, "To retrieve the API key for the Hue (use with --host option)")
	flags.String(KeyHost, "", "Your Hue hostname or `IP`")
	flags.String(KeyKey, "", "Your `API_KEY`")
	flags.Bool(KeyAskKey, false, "Prompt for the API key without echoing it")
	flags.Bool(KeyVerbose, false, "Give more output")
	flags.String(KeyLogLevel, "warn", "Log `level` (debug, info, warn, error)")
	flags.String(KeyLogFile, "", "Write logs to a rotated `file` instead of stderr")
	flags.String(KeyColor, "auto", "Colour output: auto, always or never")
	flags.Duration(KeyThrottle, 0, "Pause between light updates")
}

// ReadConfig loads the optional config file. An explicit file must exist,
// otherwise the usual locations are searched and a missing file is ignored.
func ReadConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")                // name of config file (without extension)
		v.SetConfigType("json")                  // REQUIRED if the config file does not have the extension in the name
		v.AddConfigPath("/etc/huecli/")          // path to look for the config file in
		v.AddConfigPath("$HOME/.config/huecli/") // call multiple times to add many search paths
		v.AddConfigPath(".")                     // optionally look for config in the working directory
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Load reads the settings; flags win over env vars, env vars over the file.
func Load(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("error binding flags: %w", err)
	}

	return Config{
		Auth:     v.GetBool(KeyAuth),
		Host:     v.GetString(KeyHost),
		Key:      v.GetString(KeyKey),
		AskKey:   v.GetBool(KeyAskKey),
		Verbose:  v.GetBool(KeyVerbose),
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  v.GetString(KeyLogFile),
		Color:    v.GetString(KeyColor),
		Throttle: v.GetDuration(KeyThrottle),
	}, nil
}
