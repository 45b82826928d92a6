package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/model"
)

// ContactRepository 联系人边的读写，全部走规范序行形态
type ContactRepository interface {
    Create(ctx context.Context, userA, userB string) error
    Exists(ctx context.Context, userA, userB string) (bool, error)
    SoftDelete(ctx context.Context, userA, userB string) (int64, error)
    ListPartners(ctx context.Context, userID string) ([]string, error)
}

type contactRepository struct{ db *gorm.DB }

func NewContactRepository(db *gorm.DB) ContactRepository { return &contactRepository{db: db} }

func (r *contactRepository) Create(ctx context.Context, userA, userB string) error {
    c := &model.Contact{ID: uuid.New().String(), OwnerID: userA, OtherID: userB}
    // BeforeCreate 落规范序
    return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepository) Exists(ctx context.Context, userA, userB string) (bool, error) {
    owner, other := model.ContactPair(userA, userB)
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Contact{}).
        Where("owner_id = ? AND other_id = ?", owner, other).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

// SoftDelete 返回删除行数，0 表示边不存在
func (r *contactRepository) SoftDelete(ctx context.Context, userA, userB string) (int64, error) {
    owner, other := model.ContactPair(userA, userB)
    res := r.db.WithContext(ctx).
        Where("owner_id = ? AND other_id = ?", owner, other).
        Delete(&model.Contact{})
    return res.RowsAffected, res.Error
}

// ListPartners 用户的联系人 id 列表。规范序下自己可能在任一列，取对侧
func (r *contactRepository) ListPartners(ctx context.Context, userID string) ([]string, error) {
    var rows []*model.Contact
    if err := r.db.WithContext(ctx).
        Where("owner_id = ? OR other_id = ?", userID, userID).
        Order("created_at DESC").
        Find(&rows).Error; err != nil {
        return nil, err
    }
    partners := make([]string, 0, len(rows))
    for _, c := range rows {
        if c.OwnerID == userID {
            partners = append(partners, c.OtherID)
        } else {
            partners = append(partners, c.OwnerID)
        }
    }
    return partners, nil
}
