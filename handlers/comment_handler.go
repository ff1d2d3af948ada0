package handlers

import (
	"strconv"

	"knowledgehub-api/helper"
	"knowledgehub-api/models"
	"knowledgehub-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: &helper.HTTPHelper{}}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, _ := c.Get("user_id")
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(uint(articleID), req, userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Comment created successfully", comment)
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	comments, err := h.commentService.GetComments(uint(articleID))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", comments)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, _ := c.Get("user_id")
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	comment, err := h.commentService.UpdateComment(uint(commentID), req, userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment updated successfully", comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, _ := c.Get("user_id")
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.commentService.DeleteComment(uint(commentID), userID.(uint)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *CommentHandler) LikeComment(c *gin.Context) {
	userID, _ := c.Get("user_id")
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.commentService.LikeComment(uint(commentID), userID.(uint)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment liked", h.Helper.EmptyJsonMap())
}

func (h *CommentHandler) UnlikeComment(c *gin.Context) {
	userID, _ := c.Get("user_id")
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.commentService.UnlikeComment(uint(commentID), userID.(uint)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment unliked", h.Helper.EmptyJsonMap())
}
