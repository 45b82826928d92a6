package model

import "time"

// User 账号主体（生命周期由身份子系统管理，这里只做存在性/登录名解析）
type User struct {
    ID            string     `gorm:"primaryKey;type:varchar(36)"`
    Username      string     `gorm:"type:varchar(64);uniqueIndex;not null"`
    Email         string     `gorm:"type:varchar(128)"`
    Password      string     `gorm:"type:varchar(128)"`
    DeactivatedAt *time.Time
    CreatedAt     time.Time
    UpdatedAt     time.Time
}

func (User) TableName() string { return "users" }
