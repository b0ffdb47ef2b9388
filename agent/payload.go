package agent

import (
	"bytes"
	"text/template"

	"github.com/habiliai/agentprovisioner/errors"
)

const (
	AgentName        = "mcp-weather-agent"
	AgentDescription = "Agent that uses GPT-4.1 and the MCP Weather API to answer weather questions."

	ToolName        = "mcp_weather_via_apim"
	ToolDescription = "Calls the MCP Weather API exposed through Azure API Management."
)

var instructionsTmpl = template.Must(template.New("instructions").Parse(
	"You are a weather assistant. When the user requests weather information, call the " +
		"`{{ .ToolName }}` tool and pass the location as JSON {\"location\": \"city\"}. " +
		"Return a concise summary of the weather based on the tool response.",
))

func renderInstructions(toolName string) (string, error) {
	var buf bytes.Buffer
	if err := instructionsTmpl.Execute(&buf, map[string]any{
		"ToolName": toolName,
	}); err != nil {
		return "", errors.Wrapf(err, "failed to render instructions")
	}
	return buf.String(), nil
}

// BuildAgentPayload constructs the weather agent definition. toolURL is passed
// through unvalidated. The subscription key header is set only when
// subscriptionKey is non-empty.
func BuildAgentPayload(toolURL string, subscriptionKey string, modelDeployment string) (*Definition, error) {
	headers := map[string]string{}
	if subscriptionKey != "" {
		headers[SubscriptionKeyHeader] = subscriptionKey
	}

	instructions, err := renderInstructions(ToolName)
	if err != nil {
		return nil, err
	}

	return &Definition{
		Name:         AgentName,
		Description:  AgentDescription,
		Model:        modelDeployment,
		Instructions: instructions,
		Tools: []Tool{
			{
				Type:        ToolTypeWebAPI,
				Name:        ToolName,
				Description: ToolDescription,
				Spec: ToolSpec{
					Method:       "POST",
					URL:          toolURL,
					Headers:      headers,
					InputSchema:  reflectSchema(&WeatherRequest{}),
					OutputSchema: reflectSchema(&WeatherResponse{}),
				},
			},
		},
	}, nil
}
