package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fuegovic/homebox-analytics/pkg/services/registry"
)

type ProfilesCmd struct {
	cfgPath string
	output  io.Writer
}

// NewProfilesCmd lists the connection profiles available in the homeboxcfg file.
func NewProfilesCmd(output io.Writer) *cobra.Command {
	pc := &ProfilesCmd{output: output}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List configured Homebox connection profiles",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.cfgPath, "homeboxcfg", defaultCfgPath(), "Path to the homeboxcfg profile file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, args []string) error {
	reg, err := registry.NewRegistry(pc.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load homeboxcfg: %w", err)
	}

	profiles, err := reg.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	for _, name := range profiles {
		fmt.Fprintln(pc.output, name)
	}
	return nil
}
