package agent

import (
	"github.com/invopop/jsonschema"
)

const (
	ToolTypeWebAPI = "web_api"

	SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"
)

type (
	// Definition is the agent document submitted to the management API.
	Definition struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		Model        string `json:"model"`
		Instructions string `json:"instructions"`
		Tools        []Tool `json:"tools"`
	}

	Tool struct {
		Type        string   `json:"type"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Spec        ToolSpec `json:"spec"`
	}

	// ToolSpec describes how the hosted agent invokes the tool over HTTP.
	ToolSpec struct {
		Method       string             `json:"method"`
		URL          string             `json:"url"`
		Headers      map[string]string  `json:"headers"`
		InputSchema  *jsonschema.Schema `json:"input_schema"`
		OutputSchema *jsonschema.Schema `json:"output_schema"`
	}

	WeatherRequest struct {
		Location string `json:"location" jsonschema:"required" jsonschema_description:"City, postal code, or location recognized by the MCP Weather service."`
	}

	WeatherResponse struct {
		Content string `json:"content" jsonschema_description:"Weather report returned by the MCP Weather server."`
	}
)

var schemaReflector = jsonschema.Reflector{
	Anonymous:                  true,
	ExpandedStruct:             true,
	AllowAdditionalProperties:  true,
	RequiredFromJSONSchemaTags: true,
}

func reflectSchema(v any) *jsonschema.Schema {
	s := schemaReflector.Reflect(v)
	s.Version = ""
	return s
}
