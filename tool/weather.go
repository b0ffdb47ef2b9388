package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/habiliai/agentprovisioner/agent"
	"github.com/habiliai/agentprovisioner/errors"
	"github.com/habiliai/agentprovisioner/provision"
)

const DefaultTimeout = 30 * time.Second

// Client invokes web_api tools the same way the hosted agent does.
type Client struct {
	httpClient provision.HTTPClient
	logger     *slog.Logger
}

func NewClient(httpClient provision.HTTPClient, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = provision.NewHTTPClient(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Call sends input to the tool described by spec and decodes the reply into output.
func (c *Client) Call(ctx context.Context, spec agent.ToolSpec, input any, output any) error {
	body, err := json.Marshal(input)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal tool input")
	}

	header := map[string]string{
		"Content-Type": "application/json",
	}
	for k, v := range spec.Headers {
		header[k] = v
	}

	resp, err := c.httpClient.Do(ctx, &provision.Request{
		Method:  spec.Method,
		URL:     spec.URL,
		Header:  header,
		Body:    body,
		Timeout: DefaultTimeout,
	})
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &errors.RemoteRequestError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(resp.Body)),
		}
	}

	if err := json.Unmarshal(resp.Body, output); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrSerialization, err)
	}

	return nil
}

func (c *Client) GetWeather(ctx context.Context, spec agent.ToolSpec, location string) (*agent.WeatherResponse, error) {
	c.logger.Debug("get_weather", "url", spec.URL, "location", location)

	var res agent.WeatherResponse
	if err := c.Call(ctx, spec, &agent.WeatherRequest{Location: location}, &res); err != nil {
		return nil, errors.Wrapf(err, "error occurred while fetching weather information")
	}

	return &res, nil
}
