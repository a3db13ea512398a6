package controller

import (
	"log"
	"net/http"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/middlewares"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) Register(c *gin.Context) {
	var in models.UserRegistration
	if err := c.ShouldBindJSON(&in); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.Auth.Register(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) Login(c *gin.Context) {
	var in models.UserLogin
	if err := c.ShouldBindJSON(&in); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.Auth.Login(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Me(c *gin.Context) {
	user, ok := c.Get(middlewares.UserKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var in models.ProfileUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.Auth.UpdateProfile(ctx, callerID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// callerID is the user the JWT middleware resolved for this request.
func callerID(c *gin.Context) bson.ObjectID {
	id, _ := c.Get(middlewares.UserIDKey)
	userID, _ := id.(bson.ObjectID)
	return userID
}
