package controller

import (
	"log"
	"net/http"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListResources(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	resources, err := h.Resources.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

func (h *Handler) AddResource(c *gin.Context) {
	var in models.ResourceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resource, err := h.Resources.Add(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resource)
}
