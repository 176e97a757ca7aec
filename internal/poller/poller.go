package poller

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/evmkit/chain-resolver/internal/resolver"
)

// Poller periodically reports resolver cache statistics.
type Poller struct {
	resolver *resolver.Resolver
	logger   *logrus.Logger
	interval time.Duration
	stop     chan struct{}
	wg       sync.WaitGroup
}

func New(resolver *resolver.Resolver, logger *logrus.Logger, interval time.Duration) *Poller {
	return &Poller{
		resolver: resolver,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (p *Poller) Start() {
	p.wg.Add(1)
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.report()
		case <-p.stop:
			return
		}
	}
}

func (p *Poller) Stop() {
	close(p.stop)
	p.wg.Wait()
}

func (p *Poller) report() {
	p.logger.WithFields(logrus.Fields{
		"cached_resolutions": p.resolver.CacheStats(),
	}).Debug("Resolver cache stats")
}
