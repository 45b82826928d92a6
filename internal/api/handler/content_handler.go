package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/social-graph/pkg/response"
)

type createPostRequest struct {
    AuthorID string `json:"author_id" binding:"required"`
    Content  string `json:"content" binding:"required"`
    ImageURL string `json:"image_url"`
}

// CreatePost 发帖
// @Summary 发帖
// @Tags 内容
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
    var req createPostRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    id, err := h.publisher.Publish(c.Request.Context(), req.AuthorID, req.Content, req.ImageURL)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"post_id": id})
}

type createCommentRequest struct {
    AuthorID string `json:"author_id" binding:"required"`
    Content  string `json:"content" binding:"required"`
}

// CreateComment 评论（同事务递增帖子计数）
// @Summary 发评论
// @Tags 内容
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param request body createCommentRequest true "评论内容"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
    var req createCommentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    id, err := h.commentSvc.Create(c.Request.Context(), req.AuthorID, c.Param("id"), req.Content)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"comment_id": id})
}

// ListComments 帖子评论列表（新到旧，不含已删）
// @Summary 评论列表
// @Tags 内容
// @Param id path string true "帖子ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
    list, err := h.commentSvc.ListByPost(c.Request.Context(), c.Param("id"), page, pageSize)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}

type deleteCommentRequest struct {
    UserID string `json:"user_id" binding:"required"`
}

// DeleteComment 删除评论（软删，同事务回减帖子计数）
// @Summary 删评论
// @Tags 内容
// @Accept json
// @Produce json
// @Param id path string true "评论ID"
// @Param request body deleteCommentRequest true "发起方"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/comments/{id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
    var req deleteCommentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if err := h.commentSvc.Delete(c.Request.Context(), req.UserID, c.Param("id")); err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, nil)
}
