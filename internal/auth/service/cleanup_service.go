package service

import (
	"context"
	"log"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
)

// TwoFactorCleanupService sweeps expired 2FA tokens. It is a maintenance
// job, not part of the request path, and is safe to run on any schedule.
type TwoFactorCleanupService struct {
	tokens domain.TwoFactorTokenRepository
}

func NewTwoFactorCleanupService(tokens domain.TwoFactorTokenRepository) *TwoFactorCleanupService {
	return &TwoFactorCleanupService{tokens: tokens}
}

// CleanupExpired deletes all tokens whose expiry has passed and returns
// how many were removed. Idempotent.
func (s *TwoFactorCleanupService) CleanupExpired(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if count > 0 {
		log.Printf("removed %d expired 2FA tokens", count)
	}

	return count, nil
}

// Run sweeps on the given interval until ctx is cancelled.
func (s *TwoFactorCleanupService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.CleanupExpired(ctx); err != nil {
				log.Printf("warn: 2FA token cleanup failed: %v", err)
			}
		}
	}
}
