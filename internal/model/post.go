package model

import (
    "time"

    "gorm.io/gorm"
)

// Post 内容主体，计数列是点赞/评论行数的缓存派生值
type Post struct {
    ID           string `gorm:"primaryKey;type:varchar(36)"`
    AuthorID     string `gorm:"type:varchar(36);not null;index:idx_post_author"`
    Content      string `gorm:"type:text"`
    ImageURL     string `gorm:"type:varchar(512)"`
    LikeCount    int64  `gorm:"not null;default:0"`
    CommentCount int64  `gorm:"not null;default:0"`
    CreatedAt    time.Time
    UpdatedAt    time.Time
    DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Post) TableName() string { return "posts" }
