package abha

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ayushbridge/terminology-server/internal/platform/auth"
)

// ErrInvalidCredentials is the single externally visible login failure.
// Unknown id and wrong phone are logged apart but surfaced identically.
var ErrInvalidCredentials = errors.New("invalid ABHA ID or phone number")

// Service is the auth gateway: it verifies identity claims, issues
// bearer tokens, and projects profiles.
type Service struct {
	repo   Repository
	tokens *auth.TokenIssuer
	logger zerolog.Logger
}

// NewService creates a new ABHA service.
func NewService(repo Repository, tokens *auth.TokenIssuer, logger zerolog.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, logger: logger}
}

// Login verifies an (abha_id, phone) pair and issues a bearer token.
func (s *Service) Login(ctx context.Context, abhaID, phone string) (string, *Identity, error) {
	identity, err := s.repo.GetByABHAID(ctx, abhaID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Debug().Str("abha_id", abhaID).Msg("login rejected: unknown abha id")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup identity: %w", err)
	}
	if identity.Phone != phone {
		s.logger.Debug().Str("abha_id", abhaID).Msg("login rejected: phone mismatch")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(identity.ABHAID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, identity, nil
}

// Profile returns the identity bound to an already-verified ABHA id.
// It is a plain field projection of the stored record.
func (s *Service) Profile(ctx context.Context, abhaID string) (*Identity, error) {
	return s.repo.GetByABHAID(ctx, abhaID)
}
