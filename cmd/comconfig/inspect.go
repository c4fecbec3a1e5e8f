package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/comconfig/pkg/config"
	"github.com/ajitpratap0/comconfig/pkg/loader"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <descriptor>",
		Short: "Load a descriptor and print the resulting configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loader.CreateConfigurationContext(cmd.Context(), args[0])
			return render(cmd.OutOrStdout(), a.settings.Output.Format, newConfigurationView(cfg))
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format (yaml, json)")
	_ = a.v.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	return cmd
}

func render(w io.Writer, format string, view configurationView) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
