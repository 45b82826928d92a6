package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/model"
)

// LikeRepository 点赞标记的读写。
// Create 不吞唯一键冲突：gorm.ErrDuplicatedKey 原样抛给上层，
// toggle 依赖它判定"当前已点赞"分支。
type LikeRepository interface {
    Create(ctx context.Context, like *model.Like) error
    Delete(ctx context.Context, targetType, targetID, userID string) (int64, error)
    Exists(ctx context.Context, targetType, targetID, userID string) (bool, error)
    CountForTarget(ctx context.Context, targetType, targetID string) (int64, error)
}

type likeRepository struct{ db *gorm.DB }

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) Create(ctx context.Context, like *model.Like) error {
    if like.ID == "" {
        like.ID = uuid.New().String()
    }
    return r.db.WithContext(ctx).Create(like).Error
}

// Delete 硬删，返回删除行数（0 = 并发方已先删）
func (r *likeRepository) Delete(ctx context.Context, targetType, targetID, userID string) (int64, error) {
    res := r.db.WithContext(ctx).
        Where("target_type = ? AND target_id = ? AND user_id = ?", targetType, targetID, userID).
        Delete(&model.Like{})
    return res.RowsAffected, res.Error
}

func (r *likeRepository) Exists(ctx context.Context, targetType, targetID, userID string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Like{}).
        Where("target_type = ? AND target_id = ? AND user_id = ?", targetType, targetID, userID).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *likeRepository) CountForTarget(ctx context.Context, targetType, targetID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Like{}).
        Where("target_type = ? AND target_id = ?", targetType, targetID).
        Count(&cnt).Error
    return cnt, err
}
