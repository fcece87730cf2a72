package api

import (
	"errors"
	"net/http"

	reqdto "evcharge/internal/handler/dto/request"
	resdto "evcharge/internal/handler/dto/response"
	"evcharge/internal/handler/httperr"
	"evcharge/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientCommands commands.ClientCommands
}

func NewClientHandler(clientCommands commands.ClientCommands) *ClientHandler {
	return &ClientHandler{clientCommands: clientCommands}
}

// @Summary Register client
// @Description Create a driver account referenced by reservations
// @Tags clients
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterClientRequest true "Client request"
// @Success 201 {object} resdto.ClientResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /clients [post]
func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var req reqdto.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	entity, err := h.clientCommands.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateClientEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "A client with this email already exists")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid client data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClientEntity(entity))
}
