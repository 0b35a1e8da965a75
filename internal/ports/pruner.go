package ports

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/the-light/internal/domain"
)

// Pruner handles periodic removal of old journal events
type Pruner struct {
	journal   domain.EventJournal
	interval  time.Duration
	retention time.Duration
}

// NewPruner creates a new background pruner
func NewPruner(journal domain.EventJournal, interval, retention time.Duration) *Pruner {
	return &Pruner{
		journal:   journal,
		interval:  interval,
		retention: retention,
	}
}

// Start begins periodic pruning
// This runs in a goroutine until context is cancelled
func (p *Pruner) Start(ctx context.Context) {
	log.Info().
		Dur("interval", p.interval).
		Dur("retention", p.retention).
		Msg("starting journal pruner")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Prune immediately on start
	p.pruneOnce(ctx)

	for {
		select {
		case <-ticker.C:
			p.pruneOnce(ctx)

		case <-ctx.Done():
			log.Info().Msg("stopping journal pruner")
			return
		}
	}
}

func (p *Pruner) pruneOnce(ctx context.Context) {
	if err := p.journal.DeleteOldEvents(ctx, p.retention); err != nil {
		log.Error().Err(err).Msg("failed to delete old events")
		return
	}
	log.Debug().Dur("retention", p.retention).Msg("pruned journal")
}
