package provision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/habiliai/agentprovisioner/agent"
	"github.com/habiliai/agentprovisioner/config"
	"github.com/habiliai/agentprovisioner/errors"
	"golang.org/x/oauth2"
)

const (
	APIVersion     = "2024-10-01-preview"
	DefaultTimeout = 60 * time.Second
)

type (
	Provisioner struct {
		configProvider config.Provider
		tokenSource    oauth2.TokenSource
		httpClient     HTTPClient
		logger         *slog.Logger
		outputPath     string
		timeout        time.Duration
	}
	Option func(*Provisioner)
)

func NewProvisioner(optionFuncs ...Option) (*Provisioner, error) {
	p := &Provisioner{
		timeout: DefaultTimeout,
	}
	for _, f := range optionFuncs {
		f(p)
	}

	if p.configProvider == nil {
		return nil, errors.New("config provider is required")
	}
	if p.tokenSource == nil {
		return nil, errors.New("token source is required")
	}
	if p.httpClient == nil {
		p.httpClient = NewHTTPClient(nil)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.outputPath == "" {
		outputPath, err := DefaultOutputPath()
		if err != nil {
			return nil, err
		}
		p.outputPath = outputPath
	}

	return p, nil
}

func WithConfigProvider(configProvider config.Provider) Option {
	return func(p *Provisioner) {
		p.configProvider = configProvider
	}
}

func WithTokenSource(tokenSource oauth2.TokenSource) Option {
	return func(p *Provisioner) {
		p.tokenSource = tokenSource
	}
}

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(p *Provisioner) {
		p.httpClient = httpClient
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Provisioner) {
		p.logger = logger
	}
}

func WithOutputPath(outputPath string) Option {
	return func(p *Provisioner) {
		p.outputPath = outputPath
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(p *Provisioner) {
		p.timeout = timeout
	}
}

func (p *Provisioner) OutputPath() string {
	return p.outputPath
}

// AgentsURL returns the agent creation endpoint of the project at endpoint.
func AgentsURL(endpoint string) string {
	return fmt.Sprintf("%s/openai/agents?api-version=%s", endpoint, APIVersion)
}

// CreateAgent registers the weather agent with the project, writes the response
// to the output path and returns it. Nothing is retried.
func (p *Provisioner) CreateAgent(ctx context.Context) (map[string]any, error) {
	conf, err := config.ResolveProvisionConfig(p.configProvider)
	if err != nil {
		return nil, err
	}

	token, err := p.tokenSource.Token()
	if err != nil {
		return nil, err
	}

	payload, err := agent.BuildAgentPayload(conf.ToolURL, conf.SubscriptionKey, conf.ModelDeployment)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal agent definition")
	}

	requestID := uuid.NewString()
	url := AgentsURL(conf.ProjectEndpoint)
	p.logger.Debug("create agent", "url", url, "name", payload.Name, "model", payload.Model, "requestId", requestID)

	resp, err := p.httpClient.Do(ctx, &Request{
		Method: http.MethodPost,
		URL:    url,
		Header: map[string]string{
			"Authorization":          "Bearer " + token.AccessToken,
			"Content-Type":           "application/json",
			"ai-resource-id":         conf.ResourceID,
			"ai-project-id":          conf.ProjectID,
			"x-ms-client-request-id": requestID,
		},
		Body:    body,
		Timeout: p.timeout,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &errors.RemoteRequestError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(resp.Body)),
		}
	}

	result, err := decodeResult(resp.Body)
	if err != nil {
		return nil, err
	}

	if err := writeResponse(p.outputPath, resp.Body); err != nil {
		return nil, err
	}

	p.logger.Info("agent created", "path", p.outputPath, "requestId", requestID)

	return result, nil
}

// decodeResult parses body as a JSON object. Numbers are kept as json.Number.
func decodeResult(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var result map[string]any
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrSerialization, err)
	}
	if result == nil {
		return nil, errors.Wrapf(errors.ErrSerialization, "response body is not a JSON object")
	}
	if dec.More() {
		return nil, errors.Wrapf(errors.ErrSerialization, "unexpected data after JSON object")
	}

	return result, nil
}
