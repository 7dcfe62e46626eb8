package infra

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"networth/internal/domain"
)

// TokenSweeper periodically deletes expired auth tokens so revoked and
// stale sessions do not accumulate.
type TokenSweeper struct {
	cron   *cron.Cron
	tokens domain.AuthTokenRepository
}

// NewTokenSweeper creates a new TokenSweeper
func NewTokenSweeper(tokens domain.AuthTokenRepository) *TokenSweeper {
	return &TokenSweeper{
		cron:   cron.New(),
		tokens: tokens,
	}
}

// Start schedules the hourly sweep
func (s *TokenSweeper) Start() error {
	_, err := s.cron.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		deleted, err := s.tokens.DeleteExpired(ctx)
		if err != nil {
			log.Printf("ERROR: Token sweep failed: %v", err)
			return
		}
		if deleted > 0 {
			log.Printf("[CRON] Token sweep removed %d expired tokens", deleted)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Token sweeper started (hourly)")
	return nil
}

// Stop stops the scheduler
func (s *TokenSweeper) Stop() {
	s.cron.Stop()
}
