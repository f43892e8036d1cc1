package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mock/mock.go -package=mockredis -source=interface.go

// Client is the subset of go-redis the repositories depend on. Any
// redis.UniversalClient satisfies it.
type Client interface {
	redis.UniversalClient
}
