package repository

import (
    "context"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/model"
)

// PostSummary 流查询的最小投影（联 users 拿作者名）
type PostSummary struct {
    ID           string    `json:"id"`
    AuthorID     string    `json:"author_id"`
    AuthorName   string    `json:"author_name"`
    ImageURL     string    `json:"image_url"`
    LikeCount    int64     `json:"like_count"`
    CommentCount int64     `json:"comment_count"`
    CreatedAt    time.Time `json:"created_at"`
}

// PostRepository 帖子行 + 计数列维护。
// 计数用单条 SQL 自增表达式，不做读改写；减法带 > 0 守卫，计数不落负。
type PostRepository interface {
    Create(ctx context.Context, post *model.Post) error
    FindByID(ctx context.Context, id string) (*model.Post, error)
    Exists(ctx context.Context, id string) (bool, error)
    IncrLikeCount(ctx context.Context, id string) (int64, error)
    DecrLikeCount(ctx context.Context, id string) (int64, error)
    IncrCommentCount(ctx context.Context, id string) (int64, error)
    DecrCommentCount(ctx context.Context, id string) (int64, error)
    GetLikeCount(ctx context.Context, id string) (int64, error)
    ListSummariesByAuthors(ctx context.Context, authorIDs []string) ([]*PostSummary, error)
}

type postRepository struct{ db *gorm.DB }

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
    if post.ID == "" {
        post.ID = uuid.New().String()
    }
    return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
    var p model.Post
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *postRepository) Exists(ctx context.Context, id string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Post{}).
        Where("id = ?", id).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *postRepository) IncrLikeCount(ctx context.Context, id string) (int64, error) {
    res := r.db.WithContext(ctx).
        Model(&model.Post{}).
        Where("id = ?", id).
        UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
    return res.RowsAffected, res.Error
}

func (r *postRepository) DecrLikeCount(ctx context.Context, id string) (int64, error) {
    res := r.db.WithContext(ctx).
        Model(&model.Post{}).
        Where("id = ? AND like_count > 0", id).
        UpdateColumn("like_count", gorm.Expr("like_count - ?", 1))
    return res.RowsAffected, res.Error
}

func (r *postRepository) IncrCommentCount(ctx context.Context, id string) (int64, error) {
    res := r.db.WithContext(ctx).
        Model(&model.Post{}).
        Where("id = ?", id).
        UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1))
    return res.RowsAffected, res.Error
}

func (r *postRepository) DecrCommentCount(ctx context.Context, id string) (int64, error) {
    res := r.db.WithContext(ctx).
        Model(&model.Post{}).
        Where("id = ? AND comment_count > 0", id).
        UpdateColumn("comment_count", gorm.Expr("comment_count - ?", 1))
    return res.RowsAffected, res.Error
}

func (r *postRepository) GetLikeCount(ctx context.Context, id string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Post{}).
        Where("id = ?", id).
        Select("like_count").
        Scan(&cnt).Error
    return cnt, err
}

// ListSummariesByAuthors 指定作者集合的非删帖子投影。
// Table+Scan 绕过了软删自动过滤，deleted_at 条件要显式带上。
func (r *postRepository) ListSummariesByAuthors(ctx context.Context, authorIDs []string) ([]*PostSummary, error) {
    if len(authorIDs) == 0 {
        return []*PostSummary{}, nil
    }
    var rows []*PostSummary
    err := r.db.WithContext(ctx).
        Table("posts").
        Select("posts.id", "posts.author_id", "users.username AS author_name",
            "posts.image_url", "posts.like_count", "posts.comment_count", "posts.created_at").
        Joins("JOIN users ON users.id = posts.author_id").
        Where("posts.author_id IN ?", authorIDs).
        Where("posts.deleted_at IS NULL").
        Scan(&rows).Error
    if err != nil {
        return nil, err
    }
    return rows, nil
}
