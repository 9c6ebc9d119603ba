package ai

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"dev-discuss/helpers"

	"github.com/ollama/ollama/api"
)

// per-call deadlines observed by the handlers
const (
	ClassifyTimeout = 10 * time.Second
	GradeTimeout    = 10 * time.Second
	FixTimeout      = 15 * time.Second
	ChatTimeout     = 25 * time.Second
)

// completer is the provider surface the client needs; satisfied by the
// ollama api client and replaceable in tests
type completer interface {
	Generate(ctx context.Context, req *api.GenerateRequest, fn api.GenerateResponseFunc) error
	Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error
}

// Client wraps the generative-AI provider and adds the bounded response
// cache and the conversation registry. It is constructed once and injected
// through the environment, never reached through package globals.
type Client struct {
	api           completer
	model         string
	cache         *responseCache
	conversations *conversationRegistry
}

// NewClient builds the provider connection from AI_URL and AI_MODEL
func NewClient() (*Client, error) {

	base, err := url.ParseRequestURI(os.Getenv("AI_URL"))
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 15 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}

	return &Client{
		api:           api.NewClient(base, httpClient),
		model:         os.Getenv("AI_MODEL"),
		cache:         newResponseCache(),
		conversations: newConversationRegistry(),
	}, nil
}

// Complete sends a single stateless prompt to the model. The bounded cache
// is consulted first; a cancelled or failed call never writes the cache, so
// an abandoned request cannot mutate shared state after its caller moved on.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {

	if text, ok := c.cache.get(prompt); ok {
		return text, nil
	}

	var sb strings.Builder
	req := &api.GenerateRequest{Model: c.model, Prompt: prompt}

	err := c.api.Generate(ctx, req, func(r api.GenerateResponse) error {
		sb.WriteString(r.Response)
		return nil
	})
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	text := sb.String()
	if ctx.Err() == nil {
		c.cache.put(prompt, text)
	}

	return text, nil
}

// CompleteWithFallback bounds Complete with a deadline and substitutes the
// fallback text on any provider error, so a degraded model never crashes a
// handler
func (c *Client) CompleteWithFallback(ctx context.Context, prompt string, fallback string, timeout time.Duration) string {

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := c.Complete(ctx, prompt)
	if err != nil {
		return fallback
	}

	return text
}

// StartConversation allocates a new chat handle
func (c *Client) StartConversation() string {
	return c.conversations.create()
}

// SendTurn runs one stateful chat exchange. The history is committed only
// after the provider call succeeds.
func (c *Client) SendTurn(ctx context.Context, handle string, message string) (string, error) {

	messages := c.conversations.snapshot(handle, message)

	var sb strings.Builder
	stream := false
	req := &api.ChatRequest{Model: c.model, Messages: messages, Stream: &stream}

	err := c.api.Chat(ctx, req, func(r api.ChatResponse) error {
		sb.WriteString(r.Message.Content)
		return nil
	})
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	reply := sb.String()
	c.conversations.commit(handle, message, reply)

	return reply, nil
}

// CacheSize reports the number of cached completions (monitoring)
func (c *Client) CacheSize() int {
	return c.cache.len()
}
