package handlers

import (
	"strconv"

	"knowledgehub-api/helper"
	"knowledgehub-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleVersionHandler struct {
	versionService services.ArticleVersionService
	Helper         *helper.HTTPHelper
}

func NewArticleVersionHandler(versionService services.ArticleVersionService) *ArticleVersionHandler {
	return &ArticleVersionHandler{versionService: versionService, Helper: &helper.HTTPHelper{}}
}

func (h *ArticleVersionHandler) GetArticleVersions(c *gin.Context) {
	userID, _ := c.Get("user_id")
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	versions, err := h.versionService.GetVersions(uint(articleID), userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", versions)
}

func (h *ArticleVersionHandler) RestoreArticleVersion(c *gin.Context) {
	userID, _ := c.Get("user_id")
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	versionNumber, err := strconv.Atoi(c.Param("version_number"))
	if err != nil || versionNumber <= 0 {
		h.Helper.SendBadRequest(c, "Invalid version number", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.versionService.RestoreVersion(uint(articleID), versionNumber, userID.(uint)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Version restored successfully", h.Helper.EmptyJsonMap())
}

func (h *ArticleVersionHandler) DeleteArticleVersion(c *gin.Context) {
	userID, _ := c.Get("user_id")
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	versionNumber, err := strconv.Atoi(c.Param("version_number"))
	if err != nil || versionNumber <= 0 {
		h.Helper.SendBadRequest(c, "Invalid version number", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.versionService.DeleteVersion(uint(articleID), versionNumber, userID.(uint)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Version deleted successfully", h.Helper.EmptyJsonMap())
}
