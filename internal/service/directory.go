package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/repository"
)

// ResolutionMode selects how the inbound request identifies its tenant.
type ResolutionMode string

const (
	// ModeHeader resolves the tenant from an explicit slug header.
	ModeHeader ResolutionMode = "header"
	// ModeSubdomain resolves the tenant from the leftmost Host label.
	ModeSubdomain ResolutionMode = "subdomain"
)

// DirectoryService is the authoritative mapping from an inbound identifier
// to a tenant record. Lookups are single unique-key reads; there is no
// fallback search and no fuzzy matching. Not-found is reported as
// ErrTenantNotFound and the caller decides whether that is fatal.
type DirectoryService struct {
	repo repository.PostgresRepository
}

func NewDirectoryService(repo repository.PostgresRepository) *DirectoryService {
	return &DirectoryService{repo: repo}
}

// Resolve maps (mode, identifier) to a tenant. In header mode the
// identifier is the tenant slug. In subdomain mode it is the request Host;
// hosts with two or fewer dot-separated labels (bare root domains) are
// never consulted and resolve to ErrHostNotEligible.
func (s *DirectoryService) Resolve(ctx context.Context, mode ResolutionMode, identifier string) (*domain.Tenant, error) {
	switch mode {
	case ModeHeader:
		return s.resolveSlug(ctx, identifier)
	case ModeSubdomain:
		return s.resolveHost(ctx, identifier)
	default:
		return nil, ErrUnknownMode
	}
}

func (s *DirectoryService) resolveSlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	if slug == "" {
		return nil, ErrTenantNotFound
	}
	tenant, err := s.repo.Tenant().GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func (s *DirectoryService) resolveHost(ctx context.Context, host string) (*domain.Tenant, error) {
	// Strip a port if present.
	if idx := strings.IndexByte(host, ':'); idx >= 0 {
		host = host[:idx]
	}

	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		return nil, ErrHostNotEligible
	}

	// Prefer an exact domain binding, then fall back to treating the
	// leftmost label as the tenant slug.
	tenant, err := s.repo.Tenant().GetByHostname(ctx, host)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.resolveSlug(ctx, labels[0])
}
