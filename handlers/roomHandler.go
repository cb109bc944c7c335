package handlers

import (
	"ClinicBook/models"
	"ClinicBook/services"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service *services.RoomService
}

func NewRoomHandler(service *services.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &room); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(201, room)
}

func (h *RoomHandler) GetRoomByID(c *gin.Context) {
	room, err := h.service.GetByID(c, c.Param("room_id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, room)
}

func (h *RoomHandler) GetAllRooms(c *gin.Context) {
	rooms, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, rooms)
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	room.ID = c.Param("room_id")

	if err := h.service.Update(c, &room); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, room)
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("room_id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Room deleted"})
}
