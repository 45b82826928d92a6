package service

import (
    "context"
    "fmt"
    "sort"

    "github.com/d60-Lab/social-graph/internal/repository"
)

// FeedMode 可见作者集的口径
type FeedMode string

const (
    FeedModeOwn      FeedMode = "own"      // 只看自己
    FeedModeAll      FeedMode = "all"      // 自己 + 所有联系人
    FeedModeSpecific FeedMode = "specific" // 指定用户（不校验联系人关系，公开主页口径）
)

// SortKey 流排序键
type SortKey string

const (
    SortLatest   SortKey = "latest"
    SortLikes    SortKey = "likes"
    SortComments SortKey = "comments"
)

// FeedService 可见作者集计算 + 帖子投影 + 排序
type FeedService interface {
    Fetch(ctx context.Context, viewerID string, mode FeedMode, sortKey SortKey, specificUserID string) ([]*repository.PostSummary, error)
    VisibleAuthors(ctx context.Context, viewerID string, mode FeedMode, specificUserID string) ([]string, error)
}

type feedService struct {
    contacts ContactService
    posts    repository.PostRepository
}

func NewFeedService(contacts ContactService, posts repository.PostRepository) FeedService {
    return &feedService{contacts: contacts, posts: posts}
}

// VisibleAuthors 计算 viewer 在该口径下可见的作者集合。
// specific 口径按观测行为保留：不做联系人成员校验，任何账号的帖子都可按 id 拉取。
func (s *feedService) VisibleAuthors(ctx context.Context, viewerID string, mode FeedMode, specificUserID string) ([]string, error) {
    switch mode {
    case FeedModeOwn:
        return []string{viewerID}, nil
    case FeedModeAll:
        partners, err := s.contacts.ListContacts(ctx, viewerID)
        if err != nil {
            return nil, err
        }
        return append([]string{viewerID}, partners...), nil
    case FeedModeSpecific:
        if specificUserID == "" {
            return nil, fmt.Errorf("%w: specific mode requires a user id", ErrValidation)
        }
        return []string{specificUserID}, nil
    default:
        return nil, fmt.Errorf("%w: unknown feed mode %q", ErrValidation, mode)
    }
}

func (s *feedService) Fetch(ctx context.Context, viewerID string, mode FeedMode, sortKey SortKey, specificUserID string) ([]*repository.PostSummary, error) {
    authors, err := s.VisibleAuthors(ctx, viewerID, mode, specificUserID)
    if err != nil {
        return nil, err
    }
    posts, err := s.posts.ListSummariesByAuthors(ctx, authors)
    if err != nil {
        return nil, err
    }
    return sortPosts(posts, sortKey), nil
}

// sortPosts 纯排序，不改入参切片。
// 主键相等时按 id 降序，等值计数下输出顺序可复现。
func sortPosts(posts []*repository.PostSummary, key SortKey) []*repository.PostSummary {
    out := make([]*repository.PostSummary, len(posts))
    copy(out, posts)
    less := func(i, j int) bool { return out[i].ID > out[j].ID }
    switch key {
    case SortLikes:
        less = func(i, j int) bool {
            if out[i].LikeCount != out[j].LikeCount {
                return out[i].LikeCount > out[j].LikeCount
            }
            return out[i].ID > out[j].ID
        }
    case SortComments:
        less = func(i, j int) bool {
            if out[i].CommentCount != out[j].CommentCount {
                return out[i].CommentCount > out[j].CommentCount
            }
            return out[i].ID > out[j].ID
        }
    case SortLatest, "":
        less = func(i, j int) bool {
            if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
                return out[i].CreatedAt.After(out[j].CreatedAt)
            }
            return out[i].ID > out[j].ID
        }
    }
    sort.Slice(out, less)
    return out
}
