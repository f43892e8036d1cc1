package redis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	sheeterrors "github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr  *miniredis.Miniredis
	ctx context.Context
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TestNewClient() {
	s.Run("requires an endpoint", func() {
		client, err := redis.NewClient("", nil)
		s.Nil(client)
		s.True(sheeterrors.IsInvalidArgument(err))
	})

	s.Run("talks to the server", func() {
		client, err := redis.NewClient(s.mr.Addr(), &redis.Options{PoolSize: 2})
		s.Require().NoError(err)
		defer func() { _ = client.Close() }()

		s.Require().NoError(client.Ping(s.ctx).Err())
		s.Require().NoError(client.Set(s.ctx, "slot", "payload", 0).Err())

		got, err := client.Get(s.ctx, "slot").Result()
		s.Require().NoError(err)
		s.Equal("payload", got)
	})
}

func (s *ClientTestSuite) TestIsNil() {
	client, err := redis.NewClient(s.mr.Addr(), nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	_, err = client.Get(s.ctx, "missing").Result()
	s.True(redis.IsNil(err))
	s.False(redis.IsNil(errors.New("boom")))
	s.False(redis.IsNil(nil))
}
