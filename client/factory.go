package client

import (
	"context"
	"time"

	"google.golang.org/api/option"
)

// ClientFactory creates connected API clients
type ClientFactory interface {
	// CreateClient creates a connected client for the given API key
	CreateClient(ctx context.Context, apiKey string) (YouTubeAPI, error)
}

// DefaultClientFactory builds YouTubeDataClient instances
type DefaultClientFactory struct {
	CallTimeout time.Duration
	Options     []option.ClientOption
}

// NewDefaultClientFactory creates a new DefaultClientFactory
func NewDefaultClientFactory(callTimeout time.Duration, opts ...option.ClientOption) *DefaultClientFactory {
	return &DefaultClientFactory{CallTimeout: callTimeout, Options: opts}
}

// CreateClient implements ClientFactory
func (f *DefaultClientFactory) CreateClient(ctx context.Context, apiKey string) (YouTubeAPI, error) {
	c, err := NewYouTubeDataClient(apiKey, f.CallTimeout)
	if err != nil {
		return nil, err
	}
	if err := c.Connect(ctx, f.Options...); err != nil {
		return nil, err
	}
	return c, nil
}
