package provision

import (
	"net/http"

	"github.com/habiliai/agentprovisioner/config"
	"github.com/habiliai/agentprovisioner/internal/mylog"
	"github.com/jcooky/go-din"
	"golang.org/x/oauth2"
)

func init() {
	din.RegisterT(func(c *din.Container) (HTTPClient, error) {
		return NewHTTPClient(&http.Client{}), nil
	})
	din.RegisterT(func(c *din.Container) (*Provisioner, error) {
		configProvider, err := din.GetT[config.Provider](c)
		if err != nil {
			return nil, err
		}
		tokenSource, err := din.GetT[oauth2.TokenSource](c)
		if err != nil {
			return nil, err
		}
		httpClient, err := din.GetT[HTTPClient](c)
		if err != nil {
			return nil, err
		}
		logger, err := din.GetT[*mylog.Logger](c)
		if err != nil {
			return nil, err
		}

		return NewProvisioner(
			WithConfigProvider(configProvider),
			WithTokenSource(tokenSource),
			WithHTTPClient(httpClient),
			WithLogger(logger),
		)
	})
}
