package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type selectRequest struct {
	Name string `json:"name"`
}

// --------------------------------------------------
// Tray lifecycle
// --------------------------------------------------
func (h *Handler) Start(c *gin.Context) {
	trayID, snap := h.service.Start(c.GetString("userID"))

	c.JSON(http.StatusCreated, gin.H{
		"tray_id": trayID,
		"tray":    snap,
	})
}

func (h *Handler) Get(c *gin.Context) {
	snap, err := h.service.Get(c.Param("id"), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tray not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tray": snap})
}

// SetSlot handles the three selection routes. The slot is fixed per
// route; the body carries the item name. Unknown names deselect.
func (h *Handler) SetSlot(slot Slot) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		snap, err := h.service.SetSlot(
			c.Request.Context(),
			c.Param("id"),
			c.GetString("userID"),
			slot,
			req.Name,
		)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "tray not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"tray": snap})
	}
}

func (h *Handler) Submit(c *gin.Context) {
	order, err := h.service.Submit(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrTrayNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tray not found"})
		case errors.Is(err, ErrEmptyTray):
			c.JSON(http.StatusBadRequest, gin.H{"error": "select an entree before submitting"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) Cancel(c *gin.Context) {
	err := h.service.Cancel(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tray not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
}

func (h *Handler) History(c *gin.Context) {
	orders, err := h.service.History(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
