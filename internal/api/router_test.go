package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/social-graph/config"
	"github.com/d60-Lab/social-graph/internal/api/handler"
	"github.com/d60-Lab/social-graph/internal/cache"
	"github.com/d60-Lab/social-graph/internal/model"
	"github.com/d60-Lab/social-graph/internal/repository"
	"github.com/d60-Lab/social-graph/internal/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.FriendRequest{}, &model.Contact{},
		&model.Post{}, &model.Comment{}, &model.Like{},
	))

	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewFriendRequestRepository(db)
	contactRepo := repository.NewContactRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	contactsCache := cache.NewContactsCache(nil, 0)
	contactSvc := service.NewContactService(db, userRepo, requestRepo, contactRepo, contactsCache)
	likeSvc := service.NewLikeService(likeRepo, postRepo, commentRepo)
	feedSvc := service.NewFeedService(contactSvc, postRepo)
	commentSvc := service.NewCommentService(db, commentRepo)
	publisher := service.NewPublisher(userRepo, postRepo)

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.RateLimit.RPS = 1000
	cfg.RateLimit.Burst = 1000

	h := handler.New(contactSvc, likeSvc, feedSvc, commentSvc, publisher)
	return NewRouter(cfg, h), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestToggleLikeEndpoint(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&model.User{ID: "u1", Username: "alice"}).Error)
	require.NoError(t, db.Create(&model.Post{ID: "p1", AuthorID: "u1", LikeCount: 3}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/v1/likes/toggle", gin.H{
		"user_id": "u1", "target_id": "p1", "target_type": "post",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_liked":true`)
	assert.Contains(t, w.Body.String(), `"like_count":4`)

	w = doJSON(t, r, http.MethodPost, "/api/v1/likes/toggle", gin.H{
		"user_id": "u1", "target_id": "p1", "target_type": "post",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_liked":false`)
	assert.Contains(t, w.Body.String(), `"like_count":3`)
}

func TestToggleLikeEndpointRejectsBadTargetType(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/likes/toggle", gin.H{
		"user_id": "u1", "target_id": "p1", "target_type": "story",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleLikeEndpointMissingTarget(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&model.User{ID: "u1", Username: "alice"}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/v1/likes/toggle", gin.H{
		"user_id": "u1", "target_id": "nope", "target_type": "post",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactFlowEndpoints(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&model.User{ID: "u1", Username: "alice"}).Error)
	require.NoError(t, db.Create(&model.User{ID: "u2", Username: "bob"}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/v1/contacts/requests", gin.H{
		"requester_id": "u1", "target_username": "bob",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			RequestID string `json:"request_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.RequestID)

	// 重复申请冲突
	w = doJSON(t, r, http.MethodPost, "/api/v1/contacts/requests", gin.H{
		"requester_id": "u2", "target_username": "alice",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/contacts/requests/%s/accept", resp.Data.RequestID),
		gin.H{"receiver_id": "u2"})
	require.Equal(t, http.StatusOK, w.Code)

	// 再接受一次 → 404
	w = doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/contacts/requests/%s/accept", resp.Data.RequestID),
		gin.H{"receiver_id": "u2"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/contacts/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u2")
}

func TestFeedEndpointValidatesMode(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/feed?viewer_id=u1&mode=friends", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/feed?viewer_id=u1&mode=specific", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedEndpointOwnMode(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&model.User{ID: "u1", Username: "alice"}).Error)
	require.NoError(t, db.Create(&model.User{ID: "u2", Username: "bob"}).Error)
	require.NoError(t, db.Create(&model.Post{ID: "p1", AuthorID: "u1"}).Error)
	require.NoError(t, db.Create(&model.Post{ID: "p2", AuthorID: "u2"}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/v1/feed?viewer_id=u1&mode=own", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "p1")
	assert.NotContains(t, w.Body.String(), "p2")
}
