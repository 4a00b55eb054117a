package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryakozlova/postboard/internal/models"
	"github.com/daryakozlova/postboard/internal/store"
	"github.com/daryakozlova/postboard/internal/testutil"
)

func TestPostStoreCreateAndGet(t *testing.T) {
	db := testutil.StartPostgres(t)
	posts := store.NewPostStore(db)

	author := testutil.SeedUser(t, db, "author")

	_, err := posts.Get(42)
	assert.ErrorIs(t, err, store.ErrPostNotFound)

	created, err := posts.Create("hello world", author.ID)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := posts.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Body)
	assert.Equal(t, author.ID, got.AuthorID)
	assert.False(t, got.Created.IsZero())
}

func TestPostStoreView(t *testing.T) {
	db := testutil.StartPostgres(t)
	posts := store.NewPostStore(db)
	votes := store.NewVoteStore(db)

	author := testutil.SeedUser(t, db, "author")
	voter := testutil.SeedUser(t, db, "voter")
	other := testutil.SeedUser(t, db, "other")

	post := testutil.SeedPost(t, db, author.ID, "rate me")

	// Fresh post has no votes at all
	view, err := posts.View(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Rating)
	assert.Equal(t, 0, view.VotesAmount)

	require.NoError(t, votes.Create(voter.ID, post.ID, models.Upvote))
	require.NoError(t, votes.Create(other.ID, post.ID, models.Downvote))

	view, err = posts.View(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "rate me", view.Body)
	assert.Equal(t, author.ID, view.AuthorID)
	assert.Equal(t, 0, view.Rating)
	assert.Equal(t, 2, view.VotesAmount)

	_, err = posts.View(post.ID + 100)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostStoreLatest(t *testing.T) {
	db := testutil.StartPostgres(t)
	posts := store.NewPostStore(db)

	author := testutil.SeedUser(t, db, "author")
	testutil.SeedPost(t, db, author.ID, "oldest")
	testutil.SeedPost(t, db, author.ID, "middle")
	testutil.SeedPost(t, db, author.ID, "newest")

	views, err := posts.Latest(2)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "newest", views[0].Body)
	assert.Equal(t, "middle", views[1].Body)
}

func TestPostStoreBest(t *testing.T) {
	db := testutil.StartPostgres(t)
	posts := store.NewPostStore(db)
	votes := store.NewVoteStore(db)

	author := testutil.SeedUser(t, db, "author")
	var voters []models.User
	for _, name := range []string{"v1", "v2", "v3"} {
		voters = append(voters, testutil.SeedUser(t, db, name))
	}

	low := testutil.SeedPost(t, db, author.ID, "one net upvote")
	high := testutil.SeedPost(t, db, author.ID, "three net upvotes")
	unrated := testutil.SeedPost(t, db, author.ID, "no votes")

	require.NoError(t, votes.Create(voters[0].ID, low.ID, models.Upvote))
	for _, v := range voters {
		require.NoError(t, votes.Create(v.ID, high.ID, models.Upvote))
	}

	views, err := posts.Best(2)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "three net upvotes", views[0].Body)
	assert.Equal(t, 3, views[0].Rating)
	assert.Equal(t, "one net upvote", views[1].Body)
	assert.Equal(t, 1, views[1].Rating)

	// Equal ratings fall back to newest first
	require.NoError(t, votes.CancelUserVote(low.ID, voters[0].ID))
	views, err = posts.Best(3)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "three net upvotes", views[0].Body)
	assert.Equal(t, unrated.Body, views[1].Body)
	assert.Equal(t, low.Body, views[2].Body)
}
