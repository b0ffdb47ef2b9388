package main

import (
	"fmt"

	_ "github.com/habiliai/agentprovisioner/credential" // registers the Azure token source
	"github.com/habiliai/agentprovisioner/provision"
	"github.com/jcooky/go-din"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agentprovisioner",
		Short: "Create the MCP weather agent in an Azure AI Foundry project",
		Long: "Create the MCP weather agent in an Azure AI Foundry project.\n\n" +
			"The response is written to agent_response.json next to the executable, " +
			"or to the working directory when run with `go run`.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := din.NewContainer(cmd.Context(), din.EnvProd)
			return runCreate(cmd, c)
		},
	}

	cmd.AddCommand(
		newPayloadCmd(),
		newProbeCmd(),
	)

	return cmd
}

func runCreate(cmd *cobra.Command, c *din.Container) error {
	provisioner, err := din.GetT[*provision.Provisioner](c)
	if err != nil {
		return errors.Wrapf(err, "failed to initialize provisioner")
	}

	if _, err := provisioner.CreateAgent(c); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Agent created. Response written to %s.\n", provisioner.OutputPath())
	return err
}
