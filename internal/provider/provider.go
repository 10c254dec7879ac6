// Package provider owns the single GraphQL client of a run and hands it to
// the views it mounts.
package provider

import (
	"todo/internal/backend/gqltasks"
	"todo/internal/config"
	"todo/internal/gqlclient"
	"todo/internal/service"
	"todo/internal/views"
)

// Provider holds one configured client and the task backend built on it.
// Construct it once per process and pass it down; it is never reconfigured.
type Provider struct {
	client *gqlclient.Client
	tasks  *gqltasks.Client
}

// New initializes the client for cfg.Endpoint backed by cache. It does not
// validate the endpoint; a placeholder only fails on the first request.
// A nil cache gets a fresh in-memory cache.
func New(cfg *config.Config, cache gqlclient.Cache, opts ...gqlclient.Option) *Provider {
	opts = append([]gqlclient.Option{gqlclient.WithTimeout(cfg.Timeout)}, opts...)
	client := gqlclient.New(cfg.Endpoint, cache, opts...)
	return &Provider{
		client: client,
		tasks:  gqltasks.New(client, cfg.Documents),
	}
}

// Client returns the shared client handle.
func (p *Provider) Client() *gqlclient.Client { return p.client }

// Service returns the task service backed by the shared client.
func (p *Provider) Service() service.Service { return p.tasks }

// Mount binds the provider's service to a new App subtree.
func (p *Provider) Mount() *views.App {
	return views.Mount(p.tasks)
}
