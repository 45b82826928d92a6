package service

import (
    "context"
    "errors"
    "fmt"

    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/model"
    "github.com/d60-Lab/social-graph/internal/repository"
)

// ToggleResult 三种插入结局（成功 / 撞唯一键转删除 / 目标缺失）折叠后的对外结果
type ToggleResult struct {
    Liked     bool  `json:"is_liked"`
    LikeCount int64 `json:"like_count"`
}

// LikeService 点赞 toggle。不做"是否已赞"前置读，
// 唯一键冲突本身就是并发原语：同一用户并发两次 toggle，
// 恰好一个插入成功，另一个走冲突分支转成取消。
type LikeService interface {
    Toggle(ctx context.Context, userID, targetID, targetType string) (*ToggleResult, error)
}

// likeTarget 帖子/评论共用的计数面
type likeTarget interface {
    Exists(ctx context.Context, id string) (bool, error)
    IncrLikeCount(ctx context.Context, id string) (int64, error)
    DecrLikeCount(ctx context.Context, id string) (int64, error)
    GetLikeCount(ctx context.Context, id string) (int64, error)
}

type likeService struct {
    likes    repository.LikeRepository
    posts    repository.PostRepository
    comments repository.CommentRepository
}

func NewLikeService(likes repository.LikeRepository, posts repository.PostRepository, comments repository.CommentRepository) LikeService {
    return &likeService{likes: likes, posts: posts, comments: comments}
}

func (s *likeService) targetFor(targetType string) (likeTarget, error) {
    switch targetType {
    case model.TargetTypePost:
        return s.posts, nil
    case model.TargetTypeComment:
        return s.comments, nil
    default:
        return nil, fmt.Errorf("%w: unknown target type %q", ErrValidation, targetType)
    }
}

func (s *likeService) Toggle(ctx context.Context, userID, targetID, targetType string) (*ToggleResult, error) {
    target, err := s.targetFor(targetType)
    if err != nil {
        return nil, err
    }
    exists, err := target.Exists(ctx, targetID)
    if err != nil {
        return nil, err
    }
    if !exists {
        return nil, fmt.Errorf("%w: %s %q not found", ErrNotFound, targetType, targetID)
    }

    liked := true
    err = s.likes.Create(ctx, &model.Like{TargetType: targetType, TargetID: targetID, UserID: userID})
    switch {
    case err == nil:
        if _, err := target.IncrLikeCount(ctx, targetID); err != nil {
            return nil, err
        }
    case errors.Is(err, gorm.ErrDuplicatedKey):
        // 已点赞：冲突不是错误，转成取消
        liked = false
        removed, err := s.likes.Delete(ctx, targetType, targetID, userID)
        if err != nil {
            return nil, err
        }
        // 并发方已先删时不再回减，计数不落负
        if removed > 0 {
            if _, err := target.DecrLikeCount(ctx, targetID); err != nil {
                return nil, err
            }
        }
    case errors.Is(err, gorm.ErrForeignKeyViolated):
        return nil, fmt.Errorf("%w: %s %q not found", ErrNotFound, targetType, targetID)
    default:
        return nil, err
    }

    count, err := target.GetLikeCount(ctx, targetID)
    if err != nil {
        return nil, err
    }
    return &ToggleResult{Liked: liked, LikeCount: count}, nil
}
