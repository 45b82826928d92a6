package model

import "time"

// FriendRequest 好友申请（有向：sender -> receiver）
// 状态只从 pending 迁出一次，之后不再变化
type FriendRequest struct {
    ID         string    `gorm:"primaryKey;type:varchar(36)"`
    SenderID   string    `gorm:"type:varchar(36);not null;index:idx_request_sender"`
    ReceiverID string    `gorm:"type:varchar(36);not null;index:idx_request_receiver"`
    Status     string    `gorm:"type:varchar(16);not null;index"`
    CreatedAt  time.Time
    UpdatedAt  time.Time
}

func (FriendRequest) TableName() string { return "friend_requests" }

const (
    RequestStatusPending  = "pending"
    RequestStatusAccepted = "accepted"
    RequestStatusRejected = "rejected"
)
