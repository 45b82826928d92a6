package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/social-graph/internal/model"
    "github.com/d60-Lab/social-graph/internal/repository"
)

func TestPublishPost(t *testing.T) {
    db := setupTestDB(t)
    seedUser(t, db, "u1", "alice")
    pub := NewPublisher(repository.NewUserRepository(db), repository.NewPostRepository(db))

    id, err := pub.Publish(context.Background(), "u1", "hello world", "https://img.example.com/1.png")
    require.NoError(t, err)
    require.NotEmpty(t, id)

    var post model.Post
    require.NoError(t, db.First(&post, "id = ?", id).Error)
    assert.Equal(t, "u1", post.AuthorID)
    assert.EqualValues(t, 0, post.LikeCount)
    assert.EqualValues(t, 0, post.CommentCount)
}

func TestPublishUnknownAuthor(t *testing.T) {
    db := setupTestDB(t)
    pub := NewPublisher(repository.NewUserRepository(db), repository.NewPostRepository(db))

    _, err := pub.Publish(context.Background(), "ghost", "hi", "")
    assert.ErrorIs(t, err, ErrValidation)
}
