package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/model"
    "github.com/d60-Lab/social-graph/internal/repository"
)

func newFeedFixture(t *testing.T) (ContactService, FeedService, *gorm.DB) {
    t.Helper()
    db := setupTestDB(t)
    contactSvc := newContactService(db)
    feedSvc := NewFeedService(contactSvc, repository.NewPostRepository(db))

    seedUser(t, db, "u1", "alice")
    seedUser(t, db, "u2", "bob")
    seedUser(t, db, "u3", "carol")
    seedPost(t, db, "p-a", "u1", 0, 0)
    seedPost(t, db, "p-b", "u2", 0, 0)
    seedPost(t, db, "p-c", "u3", 0, 0)
    return contactSvc, feedSvc, db
}

func authorSet(posts []*repository.PostSummary) map[string]bool {
    out := map[string]bool{}
    for _, p := range posts {
        out[p.AuthorID] = true
    }
    return out
}

func TestFeedModeOwn(t *testing.T) {
    _, feedSvc, _ := newFeedFixture(t)

    posts, err := feedSvc.Fetch(context.Background(), "u1", FeedModeOwn, SortLatest, "")
    require.NoError(t, err)
    require.NotEmpty(t, posts)
    for _, p := range posts {
        assert.Equal(t, "u1", p.AuthorID)
    }
}

func TestFeedModeAllIncludesContactsOnly(t *testing.T) {
    contactSvc, feedSvc, _ := newFeedFixture(t)
    ctx := context.Background()

    id, err := contactSvc.SendRequest(ctx, "u1", "bob")
    require.NoError(t, err)
    require.NoError(t, contactSvc.AcceptRequest(ctx, "u2", id))

    posts, err := feedSvc.Fetch(ctx, "u1", FeedModeAll, SortLatest, "")
    require.NoError(t, err)
    got := authorSet(posts)
    assert.True(t, got["u1"])
    assert.True(t, got["u2"])
    assert.False(t, got["u3"])

    // 对侧同样可见
    posts, err = feedSvc.Fetch(ctx, "u2", FeedModeAll, SortLatest, "")
    require.NoError(t, err)
    assert.True(t, authorSet(posts)["u1"])
}

func TestFeedModeSpecificBypassesGraph(t *testing.T) {
    _, feedSvc, _ := newFeedFixture(t)

    // u1 和 u3 不是联系人，specific 口径仍可拉取
    posts, err := feedSvc.Fetch(context.Background(), "u1", FeedModeSpecific, SortLatest, "u3")
    require.NoError(t, err)
    require.Len(t, posts, 1)
    assert.Equal(t, "u3", posts[0].AuthorID)
}

func TestFeedModeSpecificRequiresUserID(t *testing.T) {
    _, feedSvc, _ := newFeedFixture(t)

    _, err := feedSvc.Fetch(context.Background(), "u1", FeedModeSpecific, SortLatest, "")
    assert.ErrorIs(t, err, ErrValidation)
}

func TestFeedUnknownMode(t *testing.T) {
    _, feedSvc, _ := newFeedFixture(t)

    _, err := feedSvc.Fetch(context.Background(), "u1", FeedMode("friends"), SortLatest, "")
    assert.ErrorIs(t, err, ErrValidation)
}

func TestFeedExcludesDeletedPosts(t *testing.T) {
    _, feedSvc, db := newFeedFixture(t)
    seedPost(t, db, "p-a2", "u1", 0, 0)
    require.NoError(t, db.Delete(&model.Post{ID: "p-a2"}).Error)

    posts, err := feedSvc.Fetch(context.Background(), "u1", FeedModeOwn, SortLatest, "")
    require.NoError(t, err)
    require.Len(t, posts, 1)
    assert.Equal(t, "p-a", posts[0].ID)
}

// 接受申请后 all 口径立即能看到对方的帖子（端到端场景）
func TestAcceptThenFeedVisibility(t *testing.T) {
    contactSvc, feedSvc, _ := newFeedFixture(t)
    ctx := context.Background()

    posts, err := feedSvc.Fetch(ctx, "u1", FeedModeAll, SortLatest, "")
    require.NoError(t, err)
    assert.False(t, authorSet(posts)["u2"])

    id, err := contactSvc.SendRequest(ctx, "u1", "bob")
    require.NoError(t, err)
    require.NoError(t, contactSvc.AcceptRequest(ctx, "u2", id))

    posts, err = feedSvc.Fetch(ctx, "u1", FeedModeAll, SortLatest, "")
    require.NoError(t, err)
    assert.True(t, authorSet(posts)["u2"])
}

func TestSortPostsByLikes(t *testing.T) {
    now := time.Now()
    posts := []*repository.PostSummary{
        {ID: "a", LikeCount: 1, CreatedAt: now},
        {ID: "b", LikeCount: 5, CreatedAt: now},
        {ID: "c", LikeCount: 3, CreatedAt: now},
    }
    got := sortPosts(posts, SortLikes)
    require.Len(t, got, 3)
    assert.Equal(t, []string{"b", "c", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
    // 入参不被改动
    assert.Equal(t, "a", posts[0].ID)
}

func TestSortPostsTieBreaksByID(t *testing.T) {
    now := time.Now()
    posts := []*repository.PostSummary{
        {ID: "a", LikeCount: 2, CreatedAt: now},
        {ID: "c", LikeCount: 2, CreatedAt: now},
        {ID: "b", LikeCount: 2, CreatedAt: now},
    }
    got := sortPosts(posts, SortLikes)
    assert.Equal(t, []string{"c", "b", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSortPostsByComments(t *testing.T) {
    now := time.Now()
    posts := []*repository.PostSummary{
        {ID: "a", CommentCount: 0, CreatedAt: now},
        {ID: "b", CommentCount: 7, CreatedAt: now},
    }
    got := sortPosts(posts, SortComments)
    assert.Equal(t, "b", got[0].ID)
}

func TestSortPostsLatest(t *testing.T) {
    now := time.Now()
    posts := []*repository.PostSummary{
        {ID: "a", CreatedAt: now.Add(-time.Hour)},
        {ID: "b", CreatedAt: now},
        {ID: "c", CreatedAt: now.Add(-2 * time.Hour)},
    }
    got := sortPosts(posts, SortLatest)
    assert.Equal(t, []string{"b", "a", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}
