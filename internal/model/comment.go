package model

import (
    "time"

    "gorm.io/gorm"
)

// Comment 帖子评论，软删；删除时同事务内回减帖子的 comment_count
type Comment struct {
    ID        string `gorm:"primaryKey;type:varchar(36)"`
    PostID    string `gorm:"type:varchar(36);not null;index:idx_comment_post"`
    AuthorID  string `gorm:"type:varchar(36);not null;index:idx_comment_author"`
    Content   string `gorm:"type:text"`
    LikeCount int64  `gorm:"not null;default:0"`
    CreatedAt time.Time
    UpdatedAt time.Time
    DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Comment) TableName() string { return "comments" }
