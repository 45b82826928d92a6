package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/social-graph/pkg/response"
)

type toggleLikeRequest struct {
    UserID     string `json:"user_id" binding:"required"`
    TargetID   string `json:"target_id" binding:"required"`
    TargetType string `json:"target_type" binding:"required,oneof=post comment"`
}

// ToggleLike 点赞/取消点赞
// @Summary 点赞 toggle
// @Tags 互动
// @Accept json
// @Produce json
// @Param request body toggleLikeRequest true "点赞目标"
// @Success 200 {object} response.Response{data=service.ToggleResult}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/likes/toggle [post]
func (h *Handler) ToggleLike(c *gin.Context) {
    var req toggleLikeRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    res, err := h.likeSvc.Toggle(c.Request.Context(), req.UserID, req.TargetID, req.TargetType)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, res)
}
