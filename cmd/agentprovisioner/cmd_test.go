package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/habiliai/agentprovisioner/config"
	"github.com/habiliai/agentprovisioner/errors"
	"github.com/habiliai/agentprovisioner/internal/mytesting"
	"github.com/habiliai/agentprovisioner/provision"
	"github.com/jcooky/go-din"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
)

type CmdTestSuite struct {
	mytesting.Suite

	configs config.MapProvider
}

func (s *CmdTestSuite) SetupTest() {
	s.Suite.SetupTest()

	s.configs = config.MapProvider{
		config.EnvModelDeployment: "gpt-4.1",
		config.EnvToolURL:         "https://weather.azure-api.net/mcp-weather",
	}
}

func (s *CmdTestSuite) TestPayloadJSON() {
	s.configs[config.EnvSubscriptionKey] = "secret"

	var out bytes.Buffer
	cmd := newPayloadCmd()
	cmd.SetOut(&out)

	s.Require().NoError(printPayload(cmd, s.configs, "json"))

	var doc map[string]any
	s.Require().NoError(json.Unmarshal(out.Bytes(), &doc))
	s.Equal("mcp-weather-agent", doc["name"])
	s.Equal("gpt-4.1", doc["model"])
	s.Contains(out.String(), `"Ocp-Apim-Subscription-Key": "secret"`)
}

func (s *CmdTestSuite) TestPayloadYAML() {
	var out bytes.Buffer
	cmd := newPayloadCmd()
	cmd.SetOut(&out)

	s.Require().NoError(printPayload(cmd, s.configs, "yaml"))
	s.Contains(out.String(), "name: mcp-weather-agent")
	s.Contains(out.String(), "mcp_weather_via_apim")
}

func (s *CmdTestSuite) TestPayloadUnsupportedFormat() {
	cmd := newPayloadCmd()
	cmd.SetOut(&bytes.Buffer{})

	s.Error(printPayload(cmd, s.configs, "toml"))
}

func (s *CmdTestSuite) TestPayloadMissingConfig() {
	cmd := newPayloadCmd()
	cmd.SetOut(&bytes.Buffer{})

	err := printPayload(cmd, config.MapProvider{}, "json")
	s.ErrorIs(err, errors.ErrConfiguration)
}

func (s *CmdTestSuite) TestCreate() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"agent-1"}`))
	}))
	defer server.Close()

	s.configs[config.EnvProjectEndpoint] = server.URL
	s.configs[config.EnvProjectID] = "project-1"
	s.configs[config.EnvResourceID] = "resource-1"

	outputPath := filepath.Join(s.T().TempDir(), provision.OutputFileName)
	provisioner, err := provision.NewProvisioner(
		provision.WithConfigProvider(s.configs),
		provision.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "T"})),
		provision.WithHTTPClient(provision.NewHTTPClient(server.Client())),
		provision.WithOutputPath(outputPath),
	)
	s.Require().NoError(err)

	din.SetT[config.Provider](s.Container, s.configs)
	din.SetT[*provision.Provisioner](s.Container, provisioner)

	var out bytes.Buffer
	cmd := newCmd()
	cmd.SetOut(&out)

	s.Require().NoError(runCreate(cmd, s.Container))
	s.Equal("Agent created. Response written to "+outputPath+".\n", out.String())
	s.FileExists(outputPath)
}

func (s *CmdTestSuite) TestCreateRejectsArgs() {
	cmd := newCmd()
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	s.Error(cmd.ExecuteContext(s))
}

func (s *CmdTestSuite) TestProbe() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"content":"Seattle: 12°C, light rain"}`))
	}))
	defer server.Close()

	s.configs[config.EnvToolURL] = server.URL
	din.SetT[config.Provider](s.Container, s.configs)
	din.SetT[provision.HTTPClient](s.Container, provision.NewHTTPClient(server.Client()))

	var out bytes.Buffer
	cmd := newProbeCmd()
	cmd.SetOut(&out)

	s.Require().NoError(runProbe(cmd, s.Container, "Seattle"))
	s.Equal("Seattle: 12°C, light rain\n", out.String())
}

func (s *CmdTestSuite) TestExecuteLogsFailure() {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	cmd := newCmd()
	cmd.SetArgs([]string{"payload", "--format", "toml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	s.T().Setenv(config.EnvToolURL, "https://weather.azure-api.net/mcp-weather")
	s.T().Setenv(config.EnvModelDeployment, "gpt-4.1")

	err := execute(s, cmd, logger)
	s.Require().Error(err)

	var line map[string]any
	s.Require().NoError(json.Unmarshal(logs.Bytes(), &line))
	s.Equal("ERROR", line["level"])
	s.Equal("agentprovisioner failed", line["msg"])
	s.Contains(line["err"], "unsupported format: toml")
}

func (s *CmdTestSuite) TestExecuteSucceedsQuietly() {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	cmd := newCmd()
	cmd.SetArgs([]string{"--help"})
	cmd.SetOut(&bytes.Buffer{})

	s.Require().NoError(execute(s, cmd, logger))
	s.Empty(logs.String())
}

func TestCmd(t *testing.T) {
	suite.Run(t, new(CmdTestSuite))
}
