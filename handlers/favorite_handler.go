package handlers

import (
	"strconv"

	"knowledgehub-api/helper"
	"knowledgehub-api/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService services.FavoriteService
	Helper          *helper.HTTPHelper
}

func NewFavoriteHandler(favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService, Helper: &helper.HTTPHelper{}}
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, _ := c.Get("user_id")
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.favoriteService.AddFavorite(uint(articleID), userID.(uint)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article favorited", h.Helper.EmptyJsonMap())
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, _ := c.Get("user_id")
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.favoriteService.RemoveFavorite(uint(articleID), userID.(uint)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article unfavorited", h.Helper.EmptyJsonMap())
}

func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID, _ := c.Get("user_id")

	favorites, err := h.favoriteService.GetFavorites(userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", favorites)
}
