package testutil

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// DiscordAPI serves the REST calls of a discordgo session from canned responses.
// Requests without a route succeed with an empty JSON object.
type DiscordAPI struct {
	mu       sync.Mutex
	routes   map[string]cannedResponse
	requests []string
}

type cannedResponse struct {
	status int
	body   string
}

// NewSession creates a session whose HTTP traffic goes to the returned DiscordAPI
func NewSession(t *testing.T) (*discordgo.Session, *DiscordAPI) {
	t.Helper()

	s, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	api := &DiscordAPI{routes: make(map[string]cannedResponse)}
	s.Client = &http.Client{Transport: api}
	s.MaxRestRetries = 0
	return s, api
}

// Handle sets the response for a method and an API path such as "/channels/300/messages"
func (a *DiscordAPI) Handle(method, path string, status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.routes[method+" "+path] = cannedResponse{status: status, body: body}
}

// Called reports whether a request was made to method and path
func (a *DiscordAPI) Called(method, path string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range a.requests {
		if r == method+" "+path {
			return true
		}
	}
	return false
}

// Requests returns every request seen so far as "METHOD /path"
func (a *DiscordAPI) Requests() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.requests...)
}

// RoundTrip implements http.RoundTripper
func (a *DiscordAPI) RoundTrip(req *http.Request) (*http.Response, error) {
	key := req.Method + " " + strings.TrimPrefix(req.URL.Path, "/api/v"+discordgo.APIVersion)

	a.mu.Lock()
	a.requests = append(a.requests, key)
	resp, ok := a.routes[key]
	a.mu.Unlock()

	if !ok {
		resp = cannedResponse{status: http.StatusOK, body: "{}"}
	}

	return &http.Response{
		StatusCode: resp.status,
		Status:     fmt.Sprintf("%d %s", resp.status, http.StatusText(resp.status)),
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(resp.body)),
		Request:    req,
	}, nil
}
