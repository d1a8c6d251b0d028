package belga

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Authenticator acquires and refreshes the access credential used for
// feed requests.
type Authenticator interface {
	Grant(ctx context.Context) (*oauth2.Token, error)
	Refresh(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error)
}

// OIDCAuthenticator drives the client-credentials grant against a token
// endpoint discovered from the issuer's well-known document.
type OIDCAuthenticator struct {
	clientID     string
	clientSecret string
	tokenURL     string
}

// DiscoverAuthenticator fetches the OIDC well-known document and builds
// an authenticator for the advertised token endpoint.
func DiscoverAuthenticator(ctx context.Context, httpClient *http.Client, wellKnownURI, clientID, clientSecret string) (*OIDCAuthenticator, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wellKnownURI, nil)
	if err != nil {
		return nil, fmt.Errorf("create discovery request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch well-known document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discovery returned status %d", resp.StatusCode)
	}

	var doc struct {
		TokenEndpoint string `json:"token_endpoint"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode well-known document: %w", err)
	}
	if doc.TokenEndpoint == "" {
		return nil, errors.New("well-known document has no token_endpoint")
	}

	return &OIDCAuthenticator{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     doc.TokenEndpoint,
	}, nil
}

func (a *OIDCAuthenticator) Grant(ctx context.Context) (*oauth2.Token, error) {
	cfg := clientcredentials.Config{
		ClientID:     a.clientID,
		ClientSecret: a.clientSecret,
		TokenURL:     a.tokenURL,
	}

	token, err := cfg.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("client credentials grant: %w", err)
	}
	return token, nil
}

// Refresh exchanges the refresh token when the grant returned one. Tokens
// from a client-credentials grant usually carry none; the caller falls
// back to a fresh Grant when Refresh fails.
func (a *OIDCAuthenticator) Refresh(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error) {
	if token == nil || token.RefreshToken == "" {
		return nil, errors.New("no refresh token")
	}

	cfg := oauth2.Config{
		ClientID:     a.clientID,
		ClientSecret: a.clientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: a.tokenURL},
	}

	// Force the refresh grant even if the access token has not expired
	// according to the local clock.
	stale := *token
	stale.Expiry = time.Now().Add(-time.Minute)

	refreshed, err := cfg.TokenSource(ctx, &stale).Token()
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}
	return refreshed, nil
}
