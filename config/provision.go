package config

import (
	"strings"

	"github.com/habiliai/agentprovisioner/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

const (
	EnvProjectEndpoint = "AZURE_AI_PROJECT_ENDPOINT"
	EnvProjectID       = "AZURE_AI_PROJECT_ID"
	EnvResourceID      = "AZURE_AI_RESOURCE_ID"
	EnvModelDeployment = "AZURE_OPENAI_DEPLOYMENT"
	EnvToolURL         = "APIM_WEATHER_API_URL"
	EnvSubscriptionKey = "APIM_SUBSCRIPTION_KEY"
)

var (
	RequiredProvisionEnvs = []string{
		EnvProjectEndpoint,
		EnvProjectID,
		EnvResourceID,
		EnvModelDeployment,
		EnvToolURL,
	}
	OptionalProvisionEnvs = []string{
		EnvSubscriptionKey,
	}
)

type ProvisionConfig struct {
	ProjectEndpoint string `mapstructure:"AZURE_AI_PROJECT_ENDPOINT"`
	ProjectID       string `mapstructure:"AZURE_AI_PROJECT_ID"`
	ResourceID      string `mapstructure:"AZURE_AI_RESOURCE_ID"`
	ModelDeployment string `mapstructure:"AZURE_OPENAI_DEPLOYMENT"`
	ToolURL         string `mapstructure:"APIM_WEATHER_API_URL"`
	SubscriptionKey string `mapstructure:"APIM_SUBSCRIPTION_KEY"`
}

// ResolveProvisionConfig reads every provisioning variable from p. All missing
// required names are reported together.
func ResolveProvisionConfig(p Provider) (*ProvisionConfig, error) {
	if p == nil {
		return nil, errors.New("config provider is nil")
	}

	missing := lo.Reject(RequiredProvisionEnvs, func(name string, _ int) bool {
		_, err := ReadRequired(p, name)
		return err == nil
	})
	if len(missing) > 0 {
		return nil, errors.Wrapf(errors.ErrConfiguration, "environment variables are required: %s", strings.Join(missing, ", "))
	}

	values := make(map[string]string, len(RequiredProvisionEnvs)+len(OptionalProvisionEnvs))
	for _, name := range RequiredProvisionEnvs {
		values[name] = ReadOptional(p, name)
	}
	for _, name := range OptionalProvisionEnvs {
		values[name] = ReadOptional(p, name)
	}

	var conf ProvisionConfig
	if err := mapstructure.Decode(values, &conf); err != nil {
		return nil, errors.Wrapf(err, "failed to decode provisioning config")
	}

	return &conf, nil
}
