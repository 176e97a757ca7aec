package resolver

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/evmkit/chain-resolver/internal/config"
	"github.com/evmkit/chain-resolver/pkg/chainid"
	"github.com/evmkit/chain-resolver/pkg/chains"
	"github.com/evmkit/chain-resolver/pkg/types"
)

const resolveCacheKey = "resolve:%s"

// Resolver answers chain lookups for the API and CLI surfaces. It wraps the
// pure chainid/chains packages with an alias overlay and a TTL cache of
// resolved details.
type Resolver struct {
	cache     *cache.Cache
	logger    *logrus.Logger
	titler    cases.Caser
	aliasPath string

	mu      sync.RWMutex
	aliases map[string]chainid.ID
}

func New(logger *logrus.Logger, aliasPath string, ttl, cleanup time.Duration) (*Resolver, error) {
	r := &Resolver{
		cache:     cache.New(ttl, cleanup),
		logger:    logger,
		titler:    cases.Title(language.English),
		aliasPath: aliasPath,
		aliases:   map[string]chainid.ID{},
	}

	if err := r.ReloadAliases(); err != nil {
		return nil, err
	}

	return r, nil
}

// ReloadAliases re-reads the alias overlay from disk. Resolutions already in
// the cache are dropped so stale alias hits cannot be served.
func (r *Resolver) ReloadAliases() error {
	aliases, err := config.LoadAliases(r.aliasPath)
	if err != nil {
		return fmt.Errorf("failed to load aliases: %w", err)
	}

	r.mu.Lock()
	r.aliases = aliases
	r.mu.Unlock()
	r.cache.Flush()

	if len(aliases) > 0 {
		r.logger.WithFields(logrus.Fields{
			"aliases": len(aliases),
			"path":    r.aliasPath,
		}).Info("Alias overlay loaded")
	}
	return nil
}

// Resolve turns a name, alias or numeric literal into a chain detail.
func (r *Resolver) Resolve(text string) (*types.ChainDetail, error) {
	key := strings.ToLower(strings.TrimSpace(text))

	if cached, found := r.cache.Get(fmt.Sprintf(resolveCacheKey, key)); found {
		r.logger.WithField("identifier", key).Debug("Resolution cache hit")
		return cached.(*types.ChainDetail), nil
	}

	id, err := r.lookup(key)
	if err != nil {
		return nil, err
	}

	detail := r.detail(id)
	r.cache.SetDefault(fmt.Sprintf(resolveCacheKey, key), detail)
	return detail, nil
}

// ResolveID resolves a raw numeric id. Unlike Resolve it cannot fail: an
// unrecognized id simply reports as unnamed.
func (r *Resolver) ResolveID(id uint64) *types.ChainDetail {
	return r.detail(chainid.FromUint64(id))
}

// ListChains returns details for the whole well-known enumeration.
func (r *Resolver) ListChains() []types.ChainDetail {
	all := chains.All()
	details := make([]types.ChainDetail, 0, len(all))
	for _, c := range all {
		details = append(details, *r.detail(chainid.FromChain(c)))
	}
	return details
}

// SweepCache removes expired resolutions.
func (r *Resolver) SweepCache() {
	r.cache.DeleteExpired()
}

// CacheStats reports the number of cached resolutions.
func (r *Resolver) CacheStats() int {
	return r.cache.ItemCount()
}

func (r *Resolver) lookup(key string) (chainid.ID, error) {
	r.mu.RLock()
	id, ok := r.aliases[key]
	r.mu.RUnlock()
	if ok {
		return id, nil
	}
	return chainid.Parse(key)
}

func (r *Resolver) detail(id chainid.ID) *types.ChainDetail {
	detail := &types.ChainDetail{
		Name:        id.String(),
		DisplayName: id.String(),
		ChainID:     id.ID(),
		Named:       id.IsNamed(),
		Legacy:      id.IsLegacy(),
	}
	if id.IsNamed() {
		detail.DisplayName = r.titler.String(strings.ReplaceAll(detail.Name, "-", " "))
	}
	if base, api, ok := id.ExplorerURLs(); ok {
		detail.ExplorerURL = base
		detail.ExplorerAPI = api
	}
	return detail
}
