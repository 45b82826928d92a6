package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/social-graph/pkg/response"
)

type sendRequestRequest struct {
    RequesterID    string `json:"requester_id" binding:"required"`
    TargetUsername string `json:"target_username" binding:"required"`
}

type resolveRequestRequest struct {
    ReceiverID string `json:"receiver_id" binding:"required"`
}

// SendRequest 发起好友申请
// @Summary 发起好友申请
// @Tags 联系人
// @Accept json
// @Produce json
// @Param request body sendRequestRequest true "申请信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/contacts/requests [post]
func (h *Handler) SendRequest(c *gin.Context) {
    var req sendRequestRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    id, err := h.contactSvc.SendRequest(c.Request.Context(), req.RequesterID, req.TargetUsername)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"request_id": id})
}

// AcceptRequest 接受好友申请（同事务建边）
// @Summary 接受好友申请
// @Tags 联系人
// @Accept json
// @Produce json
// @Param id path string true "申请ID"
// @Param request body resolveRequestRequest true "接收方"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/contacts/requests/{id}/accept [post]
func (h *Handler) AcceptRequest(c *gin.Context) {
    var req resolveRequestRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if err := h.contactSvc.AcceptRequest(c.Request.Context(), req.ReceiverID, c.Param("id")); err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, nil)
}

// RejectRequest 拒绝好友申请
// @Summary 拒绝好友申请
// @Tags 联系人
// @Accept json
// @Produce json
// @Param id path string true "申请ID"
// @Param request body resolveRequestRequest true "接收方"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/contacts/requests/{id}/reject [post]
func (h *Handler) RejectRequest(c *gin.Context) {
    var req resolveRequestRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if err := h.contactSvc.RejectRequest(c.Request.Context(), req.ReceiverID, c.Param("id")); err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, nil)
}

// ListReceived 收到的 pending 申请（新到旧）
// @Summary 收到的好友申请
// @Tags 联系人
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/contacts/{user_id}/requests/received [get]
func (h *Handler) ListReceived(c *gin.Context) {
    list, err := h.contactSvc.ListReceived(c.Request.Context(), c.Param("user_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"list": list})
}

// ListSent 发出的 pending 申请（新到旧）
// @Summary 发出的好友申请
// @Tags 联系人
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/contacts/{user_id}/requests/sent [get]
func (h *Handler) ListSent(c *gin.Context) {
    list, err := h.contactSvc.ListSent(c.Request.Context(), c.Param("user_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"list": list})
}

// ListContacts 联系人 id 列表（redis 索引优先）
// @Summary 联系人列表
// @Tags 联系人
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/contacts/{user_id} [get]
func (h *Handler) ListContacts(c *gin.Context) {
    list, err := h.contactSvc.ListContacts(c.Request.Context(), c.Param("user_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"list": list})
}

type removeContactRequest struct {
    UserID string `json:"user_id" binding:"required"`
}

// RemoveContact 解除联系人关系（软删边）
// @Summary 删除联系人
// @Tags 联系人
// @Accept json
// @Produce json
// @Param other_id path string true "对方用户ID"
// @Param request body removeContactRequest true "发起方"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/contacts/{other_id} [delete]
func (h *Handler) RemoveContact(c *gin.Context) {
    var req removeContactRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if err := h.contactSvc.RemoveContact(c.Request.Context(), req.UserID, c.Param("other_id")); err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, nil)
}
