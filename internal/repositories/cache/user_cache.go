package cache

import (
	"context"
	"time"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_liability_app/internal/core/ports/repositories"
	gocache "github.com/patrickmn/go-cache"
)

const userKeyPrefix = "user:"

// UserCache is a read-through cache in front of a UserReader.
// Only successful lookups are cached.
type UserCache struct {
	next  portsrepo.UserReader
	store *gocache.Cache
}

var _ portsrepo.UserReader = (*UserCache)(nil)

// NewUserCache wraps next. A non-positive ttl disables caching.
func NewUserCache(next portsrepo.UserReader, ttl time.Duration) portsrepo.UserReader {
	if ttl <= 0 {
		return next
	}
	return &UserCache{
		next:  next,
		store: gocache.New(ttl, 2*ttl),
	}
}

func (c *UserCache) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	key := userKeyPrefix + userID
	if cached, found := c.store.Get(key); found {
		user := cached.(domain.User)
		return &user, nil
	}

	user, err := c.next.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.store.SetDefault(key, *user)
	return user, nil
}
