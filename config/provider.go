package config

import (
	"os"

	"github.com/habiliai/agentprovisioner/errors"
	"github.com/jcooky/go-din"
	"github.com/joho/godotenv"
)

// Provider is a source of named configuration values.
type Provider interface {
	Lookup(name string) (string, bool)
}

type (
	EnvProvider struct{}
	MapProvider map[string]string
)

// NewEnvProvider returns a Provider backed by the process environment. Values from
// the given dotenv files are loaded first without overriding variables already set.
func NewEnvProvider(dotenvFiles ...string) (*EnvProvider, error) {
	for _, filename := range dotenvFiles {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(filename); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", filename)
		}
	}

	return &EnvProvider{}, nil
}

func (p *EnvProvider) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (p MapProvider) Lookup(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// ReadRequired returns the value of name or ErrConfiguration when it is unset or empty.
func ReadRequired(p Provider, name string) (string, error) {
	v, ok := p.Lookup(name)
	if !ok || v == "" {
		return "", errors.Wrapf(errors.ErrConfiguration, "environment variable %s is required", name)
	}
	return v, nil
}

func ReadOptional(p Provider, name string) string {
	v, _ := p.Lookup(name)
	return v
}

func init() {
	din.RegisterT(func(c *din.Container) (Provider, error) {
		if c.Env == din.EnvTest {
			return MapProvider{}, nil
		}
		p, err := NewEnvProvider(".env")
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	din.RegisterT(func(c *din.Container) (*LogConfig, error) {
		p, err := din.GetT[Provider](c)
		if err != nil {
			return nil, err
		}
		return ResolveLogConfig(p), nil
	})
}
