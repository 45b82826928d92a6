package service

import (
    "context"
    "errors"
    "fmt"

    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/model"
    "github.com/d60-Lab/social-graph/internal/repository"
)

// Publisher 负责帖子落地。图片只存外部引用，对象存储在别处。
type Publisher struct {
    users repository.UserRepository
    posts repository.PostRepository
}

func NewPublisher(users repository.UserRepository, posts repository.PostRepository) *Publisher {
    return &Publisher{users: users, posts: posts}
}

// Publish 校验作者存在后写入帖子，返回帖子 id
func (p *Publisher) Publish(ctx context.Context, authorID, content, imageURL string) (string, error) {
    ok, err := p.users.Exists(ctx, authorID)
    if err != nil {
        return "", err
    }
    if !ok {
        return "", fmt.Errorf("%w: author %q not found", ErrValidation, authorID)
    }
    post := &model.Post{AuthorID: authorID, Content: content, ImageURL: imageURL}
    if err := p.posts.Create(ctx, post); err != nil {
        if errors.Is(err, gorm.ErrForeignKeyViolated) {
            return "", fmt.Errorf("%w: author %q not found", ErrValidation, authorID)
        }
        return "", err
    }
    return post.ID, nil
}
