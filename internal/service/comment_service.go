package service

import (
    "context"
    "errors"
    "fmt"

    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/model"
    "github.com/d60-Lab/social-graph/internal/repository"
)

// CommentService 评论写路径。comment_count 与评论行在同一事务内维护。
type CommentService interface {
    Create(ctx context.Context, authorID, postID, content string) (string, error)
    Delete(ctx context.Context, userID, commentID string) error
    ListByPost(ctx context.Context, postID string, page, pageSize int) ([]*model.Comment, error)
}

type commentService struct {
    db       *gorm.DB
    comments repository.CommentRepository
}

func NewCommentService(db *gorm.DB, comments repository.CommentRepository) CommentService {
    return &commentService{db: db, comments: comments}
}

// Create 事务内写评论行并自增帖子计数。
// 计数更新 0 行命中说明帖子不存在或已删，整体回滚。
func (s *commentService) Create(ctx context.Context, authorID, postID, content string) (string, error) {
    var commentID string
    err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        comments := repository.NewCommentRepository(tx)
        posts := repository.NewPostRepository(tx)

        c := &model.Comment{PostID: postID, AuthorID: authorID, Content: content}
        if err := comments.Create(ctx, c); err != nil {
            return err
        }
        affected, err := posts.IncrCommentCount(ctx, postID)
        if err != nil {
            return err
        }
        if affected == 0 {
            return fmt.Errorf("%w: post %q not found", ErrNotFound, postID)
        }
        commentID = c.ID
        return nil
    })
    if err != nil {
        return "", err
    }
    return commentID, nil
}

// Delete 软删评论并在同一事务内回减帖子计数；只允许作者删
func (s *commentService) Delete(ctx context.Context, userID, commentID string) error {
    return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        comments := repository.NewCommentRepository(tx)
        posts := repository.NewPostRepository(tx)

        c, err := comments.FindByID(ctx, commentID)
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return fmt.Errorf("%w: comment %q not found", ErrNotFound, commentID)
            }
            return err
        }
        if c.AuthorID != userID {
            return fmt.Errorf("%w: only the author can delete a comment", ErrValidation)
        }
        affected, err := comments.SoftDelete(ctx, commentID)
        if err != nil {
            return err
        }
        if affected == 0 {
            return fmt.Errorf("%w: comment %q not found", ErrNotFound, commentID)
        }
        _, err = posts.DecrCommentCount(ctx, c.PostID)
        return err
    })
}

func (s *commentService) ListByPost(ctx context.Context, postID string, page, pageSize int) ([]*model.Comment, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    return s.comments.ListByPost(ctx, postID, (page-1)*pageSize, pageSize)
}
