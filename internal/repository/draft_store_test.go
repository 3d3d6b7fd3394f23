package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
)

type DraftStoreTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client redis.UniversalClient
	store  *repository.DraftStore
}

func (s *DraftStoreTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{s.mr.Addr()}})
	s.store = repository.NewDraftStore(s.client, time.Hour)
}

func (s *DraftStoreTestSuite) TearDownTest() {
	_ = s.client.Close()
}

func (s *DraftStoreTestSuite) TestGet_NotFound() {
	_, err := s.store.Get(context.Background(), "e1")
	assert.ErrorIs(s.T(), err, repository.ErrDraftNotFound)
}

func (s *DraftStoreTestSuite) TestSave_IncrementsVersion() {
	ctx := context.Background()
	d := model.Draw{EventID: "e1", TeamCount: 2, Status: model.DrawStatusDraft}

	first, err := s.store.Save(ctx, d, 0)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), first.Version)

	second, err := s.store.Save(ctx, first, first.Version)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), second.Version)

	got, err := s.store.Get(ctx, "e1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), got.Version)
	assert.Equal(s.T(), 2, got.TeamCount)
}

func (s *DraftStoreTestSuite) TestSave_VersionConflict() {
	ctx := context.Background()
	d := model.Draw{EventID: "e1", TeamCount: 2}

	_, err := s.store.Save(ctx, d, 0)
	require.NoError(s.T(), err)
	_, err = s.store.Save(ctx, d, 1)
	require.NoError(s.T(), err)

	_, err = s.store.Save(ctx, d, 1)
	assert.ErrorIs(s.T(), err, repository.ErrVersionConflict)

	_, err = s.store.Save(ctx, model.Draw{EventID: "e2"}, 3)
	assert.ErrorIs(s.T(), err, repository.ErrVersionConflict)
}

func (s *DraftStoreTestSuite) TestSave_SetsTTL() {
	_, err := s.store.Save(context.Background(), model.Draw{EventID: "e1"}, 0)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), time.Hour, s.mr.TTL("fairplay:draw:draft:e1"))

	s.mr.FastForward(2 * time.Hour)
	_, err = s.store.Get(context.Background(), "e1")
	assert.ErrorIs(s.T(), err, repository.ErrDraftNotFound)
}

func (s *DraftStoreTestSuite) TestDelete() {
	ctx := context.Background()
	_, err := s.store.Save(ctx, model.Draw{EventID: "e1"}, 0)
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.store.Delete(ctx, "e1"))
	_, err = s.store.Get(ctx, "e1")
	assert.ErrorIs(s.T(), err, repository.ErrDraftNotFound)
}

func TestDraftStoreTestSuite(t *testing.T) {
	suite.Run(t, new(DraftStoreTestSuite))
}
