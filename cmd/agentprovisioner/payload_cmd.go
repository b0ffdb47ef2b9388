package main

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
	"github.com/habiliai/agentprovisioner/agent"
	"github.com/habiliai/agentprovisioner/config"
	"github.com/jcooky/go-din"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newPayloadCmd() *cobra.Command {
	params := &struct {
		Format string
	}{}
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Print the agent definition without creating it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := din.NewContainer(cmd.Context(), din.EnvProd)
			p, err := din.GetT[config.Provider](c)
			if err != nil {
				return err
			}
			return printPayload(cmd, p, params.Format)
		},
	}

	cmd.Flags().StringVarP(&params.Format, "format", "f", "json", "output format: json or yaml")

	return cmd
}

func printPayload(cmd *cobra.Command, p config.Provider, format string) error {
	toolURL, err := config.ReadRequired(p, config.EnvToolURL)
	if err != nil {
		return err
	}
	modelDeployment, err := config.ReadRequired(p, config.EnvModelDeployment)
	if err != nil {
		return err
	}

	def, err := agent.BuildAgentPayload(toolURL, config.ReadOptional(p, config.EnvSubscriptionKey), modelDeployment)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to marshal agent definition")
	}

	switch format {
	case "json":
	case "yaml", "yml":
		if out, err = yaml.JSONToYAML(out); err != nil {
			return errors.Wrapf(err, "failed to convert agent definition to yaml")
		}
	default:
		return errors.Errorf("unsupported format: %s", format)
	}

	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
