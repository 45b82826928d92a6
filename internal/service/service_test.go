package service

import (
    "testing"
    "time"

    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/social-graph/internal/cache"
    "github.com/d60-Lab/social-graph/internal/model"
    "github.com/d60-Lab/social-graph/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
        TranslateError: true,
        Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
    })
    require.NoError(t, err)
    sqlDB, err := db.DB()
    require.NoError(t, err)
    // 共享一条连接，避免每个池连接各拿一份内存库
    sqlDB.SetMaxOpenConns(1)
    require.NoError(t, db.AutoMigrate(
        &model.User{}, &model.FriendRequest{}, &model.Contact{},
        &model.Post{}, &model.Comment{}, &model.Like{},
    ))
    return db
}

func seedUser(t *testing.T, db *gorm.DB, id, username string) {
    t.Helper()
    require.NoError(t, db.Create(&model.User{
        ID: id, Username: username, Email: username + "@example.com", Password: "p",
    }).Error)
}

func seedDeactivatedUser(t *testing.T, db *gorm.DB, id, username string) {
    t.Helper()
    now := time.Now()
    require.NoError(t, db.Create(&model.User{
        ID: id, Username: username, Email: username + "@example.com", Password: "p",
        DeactivatedAt: &now,
    }).Error)
}

func seedPost(t *testing.T, db *gorm.DB, id, authorID string, likeCount, commentCount int64) {
    t.Helper()
    require.NoError(t, db.Create(&model.Post{
        ID: id, AuthorID: authorID, Content: "post " + id,
        LikeCount: likeCount, CommentCount: commentCount,
    }).Error)
}

func newContactService(db *gorm.DB) ContactService {
    return NewContactService(db,
        repository.NewUserRepository(db),
        repository.NewFriendRequestRepository(db),
        repository.NewContactRepository(db),
        cache.NewContactsCache(nil, 0),
    )
}

func newLikeService(db *gorm.DB) LikeService {
    return NewLikeService(
        repository.NewLikeRepository(db),
        repository.NewPostRepository(db),
        repository.NewCommentRepository(db),
    )
}
