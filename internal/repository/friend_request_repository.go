package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/model"
)

// FriendRequestRepository 好友申请行的读写。
// 事务内组合时用事务句柄重新构造（NewFriendRequestRepository(tx)）。
type FriendRequestRepository interface {
    Create(ctx context.Context, req *model.FriendRequest) error
    HasPendingBetween(ctx context.Context, userA, userB string) (bool, error)
    FindPendingForReceiver(ctx context.Context, id, receiverID string) (*model.FriendRequest, error)
    UpdateStatus(ctx context.Context, id, status string) error
    ListPendingByReceiver(ctx context.Context, receiverID string) ([]*model.FriendRequest, error)
    ListPendingBySender(ctx context.Context, senderID string) ([]*model.FriendRequest, error)
}

type friendRequestRepository struct{ db *gorm.DB }

func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
    return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) Create(ctx context.Context, req *model.FriendRequest) error {
    if req.ID == "" {
        req.ID = uuid.New().String()
    }
    if req.Status == "" {
        req.Status = model.RequestStatusPending
    }
    return r.db.WithContext(ctx).Create(req).Error
}

// HasPendingBetween 无序对上是否已有 pending 申请（两个方向都查）
func (r *friendRequestRepository) HasPendingBetween(ctx context.Context, userA, userB string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.FriendRequest{}).
        Where("status = ?", model.RequestStatusPending).
        Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
            userA, userB, userB, userA).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

// FindPendingForReceiver 按 id + 接收方 + pending 认领申请行。
// 错误方接收、已处理、不存在，统一落到 ErrRecordNotFound。
func (r *friendRequestRepository) FindPendingForReceiver(ctx context.Context, id, receiverID string) (*model.FriendRequest, error) {
    var req model.FriendRequest
    if err := r.db.WithContext(ctx).
        Where("id = ? AND receiver_id = ? AND status = ?", id, receiverID, model.RequestStatusPending).
        First(&req).Error; err != nil {
        return nil, err
    }
    return &req, nil
}

func (r *friendRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
    return r.db.WithContext(ctx).
        Model(&model.FriendRequest{}).
        Where("id = ?", id).
        Update("status", status).Error
}

func (r *friendRequestRepository) ListPendingByReceiver(ctx context.Context, receiverID string) ([]*model.FriendRequest, error) {
    var res []*model.FriendRequest
    err := r.db.WithContext(ctx).
        Where("receiver_id = ? AND status = ?", receiverID, model.RequestStatusPending).
        Order("created_at DESC").
        Find(&res).Error
    return res, err
}

func (r *friendRequestRepository) ListPendingBySender(ctx context.Context, senderID string) ([]*model.FriendRequest, error) {
    var res []*model.FriendRequest
    err := r.db.WithContext(ctx).
        Where("sender_id = ? AND status = ?", senderID, model.RequestStatusPending).
        Order("created_at DESC").
        Find(&res).Error
    return res, err
}
