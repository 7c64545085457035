package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/oauth2"
)

// Environment variables consulted by this package
const (
	// APITokenEnv supplies a personal access token, bypassing OAuth
	APITokenEnv = "TASKORA_API_TOKEN"
	// ClientIDEnv overrides the default public OAuth client ID
	ClientIDEnv = "TASKORA_CLIENT_ID"
	// ClientSecretEnv supplies the OAuth client secret (confidential clients only)
	ClientSecretEnv = "TASKORA_CLIENT_SECRET"
)

// defaultClientID is the public CLI client registered with Taskora
const defaultClientID = "taskora-mcp-cli"

// HasToken checks if a credential exists for the default workspace
func HasToken() bool {
	return HasTokenForWorkspace("default")
}

// HasTokenForWorkspace checks if a credential exists for the workspace.
// A personal access token in the environment counts for every workspace.
func HasTokenForWorkspace(workspace string) bool {
	if os.Getenv(APITokenEnv) != "" {
		return true
	}
	_, err := os.Stat(tokenFile(workspace))
	return err == nil
}

// GetAuthURL returns the OAuth URL for user authorization
func GetAuthURL() string {
	return oauthConfig().AuthCodeURL("state")
}

// SaveToken exchanges an authorization code for tokens and caches them
// for the workspace
func SaveToken(ctx context.Context, authCode, workspace string) error {
	conf := oauthConfig()

	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	return writeToken(workspace, t)
}

// DeleteToken removes the cached credential for the workspace
func DeleteToken(workspace string) error {
	err := os.Remove(tokenFile(workspace))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// GetTokenSource returns an OAuth2 token source for the workspace.
// A personal access token from the environment takes precedence over
// the cached OAuth token.
func GetTokenSource(ctx context.Context, workspace string) (oauth2.TokenSource, error) {
	if pat := os.Getenv(APITokenEnv); pat != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: pat,
			TokenType:   "Bearer",
		}), nil
	}

	t, err := readToken(workspace)
	if err != nil {
		return nil, err
	}

	conf := oauthConfig()
	ts := conf.TokenSource(ctx, t)

	// Persist refreshed tokens so the refresh token rotation survives restarts
	return &savingTokenSource{workspace: workspace, src: ts, last: t}, nil
}

// GetHTTPClientForWorkspace returns an HTTP client that authenticates
// requests with the workspace's credential
func GetHTTPClientForWorkspace(ctx context.Context, workspace string) (*http.Client, error) {
	ts, err := GetTokenSource(ctx, workspace)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}

// savingTokenSource writes the token back to disk whenever the underlying
// source refreshes it
type savingTokenSource struct {
	workspace string
	src       oauth2.TokenSource
	last      *oauth2.Token
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	t, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.last == nil || t.AccessToken != s.last.AccessToken {
		s.last = t
		// Best effort; a failed write only costs a refresh on next start
		_ = writeToken(s.workspace, t)
	}
	return t, nil
}

// oauthConfig returns the OAuth2 configuration for the Taskora identity service
func oauthConfig() *oauth2.Config {
	const oob = "urn:ietf:wg:oauth:2.0:oob"

	clientID := os.Getenv(ClientIDEnv)
	if clientID == "" {
		clientID = defaultClientID
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: os.Getenv(ClientSecretEnv),
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://app.taskora.app/oauth/authorize",
			TokenURL: "https://api.taskora.app/oauth/token",
		},
		RedirectURL: oob,
		Scopes:      []string{"workspace.read", "workspace.write"},
	}
}

func writeToken(workspace string, t *oauth2.Token) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	cipher, err := NewTokenCipherFromEnv()
	if err != nil {
		return err
	}
	sealed, err := cipher.Encrypt(data)
	if err != nil {
		return err
	}

	dir := cacheDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(tokenFile(workspace), sealed, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func readToken(workspace string) (*oauth2.Token, error) {
	sealed, err := os.ReadFile(tokenFile(workspace))
	if err != nil {
		return nil, fmt.Errorf("no Taskora credential found for workspace %s", workspace)
	}

	cipher, err := NewTokenCipherFromEnv()
	if err != nil {
		return nil, err
	}
	data, err := cipher.Decrypt(sealed)
	if err != nil {
		return nil, err
	}

	var t oauth2.Token
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("invalid token file for workspace %s: %w", workspace, err)
	}
	return &t, nil
}

func tokenFile(workspace string) string {
	return filepath.Join(cacheDir(), workspace+".token")
}

func cacheDir() string {
	if dir := os.Getenv("TASKORA_TOKEN_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(userCacheDir(), "taskora-mcp")
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		panic("No Windows TEMP or TMP environment variables found")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
