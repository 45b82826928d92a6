package model

import (
    "time"

    "gorm.io/gorm"
)

// Contact 双向联系人关系，单行存储。
// 入库前统一成规范序（owner_id < other_id），任何读写都只用这一种行形态，
// 不需要 OR 双向查询。
// idx_contact_pair = (owner_id, other_id)
type Contact struct {
    ID        string `gorm:"primaryKey;type:varchar(36)"`
    OwnerID   string `gorm:"type:varchar(36);not null;index:idx_contact_pair;index:idx_contact_owner"`
    OtherID   string `gorm:"type:varchar(36);not null;index:idx_contact_pair;index:idx_contact_other"`
    CreatedAt time.Time
    UpdatedAt time.Time
    DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Contact) TableName() string { return "contacts" }

// BeforeCreate 保证规范序
func (c *Contact) BeforeCreate(_ *gorm.DB) error {
    c.OwnerID, c.OtherID = ContactPair(c.OwnerID, c.OtherID)
    return nil
}

// ContactPair 返回规范序的联系人对（小 id 在前）
func ContactPair(a, b string) (string, string) {
    if a > b {
        return b, a
    }
    return a, b
}
