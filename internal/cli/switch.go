package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newSwitchCmd builds the "on" and "off" commands.
func (s *session) newSwitchCmd(name, short string, on bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " LIGHT_ID...",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseLightIDs(args)
			if err != nil {
				return err
			}
			return s.lightService(s.creds).Switch(cmd.Context(), ids, on)
		},
	}
}

func parseLightIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid light id %q: not a valid integer", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
