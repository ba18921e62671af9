package remote

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-view/internal/logger"
)

// NewBackend returns a Client for cfg. If cfg cannot be used, the returned
// backend fails every search with the configuration error instead, so the
// settings commands that would repair it keep working.
func NewBackend(cfg domain.BackendSettings, opts ...Option) driven.SearchBackend {
	client, err := NewClient(cfg, opts...)
	if err != nil {
		logger.Warn("Backend disabled until %s is fixed: %v", domain.SettingBackendURL, err)
		return unconfigured{err: fmt.Errorf("configuring backend: %w", err)}
	}
	logger.Debug("Backend %s", client.Endpoint())
	return client
}

// unconfigured is a backend whose settings were rejected.
type unconfigured struct {
	err error
}

func (u unconfigured) Search(context.Context, domain.SearchRequest) (*domain.SearchResponse, error) {
	return nil, u.err
}
