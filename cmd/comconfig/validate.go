package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/comconfig/pkg/loader"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <descriptor>",
		Short: "Load a descriptor and report whether it is deployable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loader.CreateConfigurationContext(cmd.Context(), args[0])
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "OK: %d service types, %d service instances\n",
				len(cfg.ServiceTypes()), len(cfg.ServiceInstances()))
			return err
		},
	}
}
