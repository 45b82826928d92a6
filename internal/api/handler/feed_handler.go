package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/social-graph/internal/service"
    "github.com/d60-Lab/social-graph/pkg/response"
)

type feedQuery struct {
    ViewerID string `form:"viewer_id" binding:"required"`
    Mode     string `form:"mode" binding:"omitempty,feedmode"`
    Sort     string `form:"sort" binding:"omitempty,sortkey"`
    UserID   string `form:"user_id"`
}

// Feed 拉取可见帖子流
// @Summary 帖子流
// @Tags 流
// @Param viewer_id query string true "查看者ID"
// @Param mode query string false "口径 own/all/specific" default(all)
// @Param sort query string false "排序 latest/likes/comments" default(latest)
// @Param user_id query string false "specific 口径的目标用户"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/feed [get]
func (h *Handler) Feed(c *gin.Context) {
    var q feedQuery
    if err := c.ShouldBindQuery(&q); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if q.Mode == "" {
        q.Mode = string(service.FeedModeAll)
    }
    if q.Sort == "" {
        q.Sort = string(service.SortLatest)
    }
    posts, err := h.feedSvc.Fetch(c.Request.Context(), q.ViewerID, service.FeedMode(q.Mode), service.SortKey(q.Sort), q.UserID)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"list": posts})
}
