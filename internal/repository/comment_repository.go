package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/model"
)

// CommentRepository 评论行 + like_count 维护
type CommentRepository interface {
    Create(ctx context.Context, comment *model.Comment) error
    FindByID(ctx context.Context, id string) (*model.Comment, error)
    Exists(ctx context.Context, id string) (bool, error)
    SoftDelete(ctx context.Context, id string) (int64, error)
    IncrLikeCount(ctx context.Context, id string) (int64, error)
    DecrLikeCount(ctx context.Context, id string) (int64, error)
    GetLikeCount(ctx context.Context, id string) (int64, error)
    ListByPost(ctx context.Context, postID string, offset, limit int) ([]*model.Comment, error)
}

type commentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
    if comment.ID == "" {
        comment.ID = uuid.New().String()
    }
    return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id string) (*model.Comment, error) {
    var c model.Comment
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
        return nil, err
    }
    return &c, nil
}

func (r *commentRepository) Exists(ctx context.Context, id string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Comment{}).
        Where("id = ?", id).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, id string) (int64, error) {
    res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
    return res.RowsAffected, res.Error
}

func (r *commentRepository) IncrLikeCount(ctx context.Context, id string) (int64, error) {
    res := r.db.WithContext(ctx).
        Model(&model.Comment{}).
        Where("id = ?", id).
        UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
    return res.RowsAffected, res.Error
}

func (r *commentRepository) DecrLikeCount(ctx context.Context, id string) (int64, error) {
    res := r.db.WithContext(ctx).
        Model(&model.Comment{}).
        Where("id = ? AND like_count > 0", id).
        UpdateColumn("like_count", gorm.Expr("like_count - ?", 1))
    return res.RowsAffected, res.Error
}

func (r *commentRepository) GetLikeCount(ctx context.Context, id string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Comment{}).
        Where("id = ?", id).
        Select("like_count").
        Scan(&cnt).Error
    return cnt, err
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string, offset, limit int) ([]*model.Comment, error) {
    var res []*model.Comment
    err := r.db.WithContext(ctx).
        Where("post_id = ?", postID).
        Order("created_at DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}
