package main

import (
	"fmt"

	"github.com/habiliai/agentprovisioner/agent"
	"github.com/habiliai/agentprovisioner/config"
	"github.com/habiliai/agentprovisioner/internal/mylog"
	"github.com/habiliai/agentprovisioner/provision"
	"github.com/habiliai/agentprovisioner/tool"
	"github.com/jcooky/go-din"
	"github.com/spf13/cobra"
)

func newProbeCmd() *cobra.Command {
	params := &struct {
		Location string
	}{}
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Call the weather tool through the gateway as the agent would",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := din.NewContainer(cmd.Context(), din.EnvProd)
			return runProbe(cmd, c, params.Location)
		},
	}

	cmd.Flags().StringVarP(&params.Location, "location", "l", "Seattle", "location to ask the weather for")

	return cmd
}

func runProbe(cmd *cobra.Command, c *din.Container, location string) error {
	p, err := din.GetT[config.Provider](c)
	if err != nil {
		return err
	}
	httpClient, err := din.GetT[provision.HTTPClient](c)
	if err != nil {
		return err
	}
	logger, err := din.GetT[*mylog.Logger](c)
	if err != nil {
		return err
	}

	toolURL, err := config.ReadRequired(p, config.EnvToolURL)
	if err != nil {
		return err
	}

	def, err := agent.BuildAgentPayload(toolURL, config.ReadOptional(p, config.EnvSubscriptionKey), config.ReadOptional(p, config.EnvModelDeployment))
	if err != nil {
		return err
	}

	res, err := tool.NewClient(httpClient, logger).GetWeather(c, def.Tools[0].Spec, location)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Content)
	return err
}
