package credential

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/habiliai/agentprovisioner/errors"
	"github.com/jcooky/go-din"
	"golang.org/x/oauth2"
)

const Scope = "https://cognitiveservices.azure.com/.default"

type azureTokenSource struct {
	ctx    context.Context
	cred   azcore.TokenCredential
	scopes []string
}

var (
	_ oauth2.TokenSource = (*azureTokenSource)(nil)
)

// NewTokenSource adapts an Azure credential to an oauth2.TokenSource for the given
// scopes. Tokens are reused until they expire.
func NewTokenSource(ctx context.Context, cred azcore.TokenCredential, scopes ...string) oauth2.TokenSource {
	if len(scopes) == 0 {
		scopes = []string{Scope}
	}

	return oauth2.ReuseTokenSource(nil, &azureTokenSource{
		ctx:    ctx,
		cred:   cred,
		scopes: scopes,
	})
}

// NewDefaultTokenSource uses the Azure default credential chain: environment,
// workload identity, managed identity, then the Azure CLI.
func NewDefaultTokenSource(ctx context.Context, scopes ...string) (oauth2.TokenSource, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create default azure credential: %w", errors.ErrAuthentication, err)
	}

	return NewTokenSource(ctx, cred, scopes...), nil
}

func (s *azureTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.cred.GetToken(s.ctx, policy.TokenRequestOptions{
		Scopes: s.scopes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get token: %w", errors.ErrAuthentication, err)
	}

	return &oauth2.Token{
		AccessToken: tok.Token,
		TokenType:   "Bearer",
		Expiry:      tok.ExpiresOn,
	}, nil
}

func init() {
	din.RegisterT(func(c *din.Container) (oauth2.TokenSource, error) {
		return NewDefaultTokenSource(c, Scope)
	})
}
