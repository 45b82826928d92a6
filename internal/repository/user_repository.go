package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/model"
)

// UserRepository 账号查询入口（账号生命周期归身份子系统，这里只读 + 测试种子写入）
type UserRepository interface {
    Create(ctx context.Context, user *model.User) error
    Exists(ctx context.Context, id string) (bool, error)
    FindByID(ctx context.Context, id string) (*model.User, error)
    FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
    return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Exists(ctx context.Context, id string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.User{}).
        Where("id = ? AND deactivated_at IS NULL", id).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}
