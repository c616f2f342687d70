package handler

import (
	"github.com/aziyanck/ita-backoffice/internal/application/service"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the client and dealer directories
type DirectoryHandler struct {
	clientService *service.ClientService
	dealerService *service.DealerService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(clientService *service.ClientService, dealerService *service.DealerService) *DirectoryHandler {
	return &DirectoryHandler{
		clientService: clientService,
		dealerService: dealerService,
	}
}

// ListClients returns all clients with their projects nested
// @Summary List clients
// @Tags directory
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /clients [get]
func (h *DirectoryHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Clients retrieved", clients)
}

// ListDealers returns all dealers
// @Summary List dealers
// @Tags directory
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dealers [get]
func (h *DirectoryHandler) ListDealers(c *gin.Context) {
	dealers, err := h.dealerService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dealers retrieved", dealers)
}
