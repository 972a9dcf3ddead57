package cli

import (
	"github.com/spf13/cobra"
	"github.com/wheelibin/huecli/internal/hue"
	"github.com/wheelibin/huecli/internal/lights"
	"github.com/wheelibin/huecli/internal/models"
)

func (s *session) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available lights",
		Long:  "Display the available lights, or the bridge's full JSON document with --verbose.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.lightService(s.creds).List(cmd.Context(), s.creds.Verbose)
		},
	}
}

func (s *session) lightService(creds models.Credentials) *lights.LightService {
	api := hue.NewHueAPIService(s.logger, s.app.HTTPClient, creds)
	return lights.NewLightService(s.logger, api, s.out, s.cfg.Throttle)
}
