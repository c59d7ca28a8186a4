// Package readcache memoizes profile reads used to enrich posts, comments, groups and messages.
package readcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
)

var log = logrus.WithField("package", "readcache")

const fetchTimeout = 15 * time.Second

// ProfileReader reads profiles from the contract.
type ProfileReader interface {
	GetProfile(ctx context.Context, addr common.Address) (*entities.Profile, error)
}

// entry holds nil profile for addresses without a profile.
type entry struct {
	p *entities.Profile
}

// Cache is a profile read cache.
type Cache struct {
	r     ProfileReader
	lru   *expirable.LRU[common.Address, entry]
	group singleflight.Group
	sem   *semaphore.Weighted
}

// New creates new instance of Cache.
func New(r ProfileReader, size int, ttl time.Duration, concurrency int64) *Cache {
	return &Cache{
		r:   r,
		lru: expirable.NewLRU[common.Address, entry](size, nil, ttl),
		sem: semaphore.NewWeighted(concurrency),
	}
}

// Profile returns cached profile, service.ErrNotFound when address has no profile.
func (c *Cache) Profile(ctx context.Context, addr common.Address) (*entities.Profile, error) {
	if e, ok := c.lru.Get(addr); ok {
		if e.p == nil {
			return nil, fmt.Errorf("profile %s: %w", addr.Hex(), service.ErrNotFound)
		}
		return e.p, nil
	}

	// shared call outlives cancellation of the caller which started it
	ch := c.group.DoChan(addr.Hex(), func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		if err := c.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer c.sem.Release(1)

		p, err := c.r.GetProfile(ctx, addr)
		switch {
		case err == nil:
			c.lru.Add(addr, entry{p: p})
		case errors.Is(err, service.ErrNotFound):
			c.lru.Add(addr, entry{})
		default:
			return nil, err
		}

		return entry{p: p}, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	if e := res.Val.(entry); e.p != nil {
		return e.p, nil
	}

	return nil, fmt.Errorf("profile %s: %w", addr.Hex(), service.ErrNotFound)
}

// Profiles returns profiles of addresses, addresses without profile are omitted.
func (c *Cache) Profiles(ctx context.Context, addrs ...common.Address) (map[common.Address]*entities.Profile, error) {
	seen := make(map[common.Address]struct{}, len(addrs))
	uniq := make([]common.Address, 0, len(addrs))
	for _, a := range addrs {
		if _, ok := seen[a]; ok || a == (common.Address{}) {
			continue
		}
		seen[a] = struct{}{}
		uniq = append(uniq, a)
	}

	profiles := make([]*entities.Profile, len(uniq))

	gr, gctx := errgroup.WithContext(ctx)
	for i := range uniq {
		i := i
		gr.Go(func() error {
			p, err := c.Profile(gctx, uniq[i])
			if err != nil {
				if errors.Is(err, service.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("failed to get profile %s: %w", uniq[i].Hex(), err)
			}
			profiles[i] = p
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	out := make(map[common.Address]*entities.Profile, len(uniq))
	for i, p := range profiles {
		if p != nil {
			out[uniq[i]] = p
		}
	}

	log.WithField("requested", len(uniq)).WithField("found", len(out)).Debug("profiles resolved")

	return out, nil
}

// Invalidate drops cached profile of address.
func (c *Cache) Invalidate(addr common.Address) {
	c.lru.Remove(addr)
}
