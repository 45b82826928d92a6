package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/social-graph/internal/service"
    "github.com/d60-Lab/social-graph/pkg/response"
)

// Handler 聚合所有 HTTP 入口，只做绑定 / 调服务 / 映错误
type Handler struct {
    contactSvc service.ContactService
    likeSvc    service.LikeService
    feedSvc    service.FeedService
    commentSvc service.CommentService
    publisher  *service.Publisher
}

func New(contactSvc service.ContactService, likeSvc service.LikeService, feedSvc service.FeedService, commentSvc service.CommentService, publisher *service.Publisher) *Handler {
    return &Handler{
        contactSvc: contactSvc,
        likeSvc:    likeSvc,
        feedSvc:    feedSvc,
        commentSvc: commentSvc,
        publisher:  publisher,
    }
}

// writeError 服务错误分级 → HTTP 状态码
func writeError(c *gin.Context, err error) {
    switch {
    case errors.Is(err, service.ErrValidation):
        response.BadRequest(c, err.Error())
    case errors.Is(err, service.ErrNotFound):
        response.NotFound(c, err.Error())
    case errors.Is(err, service.ErrConflict):
        response.Conflict(c, err.Error())
    default:
        response.InternalError(c, err)
    }
}
