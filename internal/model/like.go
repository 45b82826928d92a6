package model

import "time"

// Like 点赞标记，存在即点赞。
// 复合唯一键是 toggle 的并发原语：重复插入撞唯一键 = 当前已点赞。
// 取消点赞必须硬删，给下一次 toggle 腾出唯一键位。
// ux_like_target_user = (target_type, target_id, user_id)
type Like struct {
    ID         string    `gorm:"primaryKey;type:varchar(36)"`
    TargetType string    `gorm:"type:varchar(16);not null;uniqueIndex:ux_like_target_user"`
    TargetID   string    `gorm:"type:varchar(36);not null;uniqueIndex:ux_like_target_user;index:idx_like_target"`
    UserID     string    `gorm:"type:varchar(36);not null;uniqueIndex:ux_like_target_user"`
    CreatedAt  time.Time
}

func (Like) TableName() string { return "likes" }

const (
    TargetTypePost    = "post"
    TargetTypeComment = "comment"
)
