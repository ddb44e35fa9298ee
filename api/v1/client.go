package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/services"
)

var clientService = services.NewClientService()

// ListClients godoc
// @Summary List clients with pagination and search
// @Tags clients
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Search term for client name or short name"
// @Success 200 {object} dto.ClientListResponse
// @Router /clients [get]
func ListClients(c *gin.Context) {
	filter := dto.ClientFilter{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
	}

	response, err := clientService.ListClients(filter)
	if err != nil {
		respondError(c, "Failed to retrieve clients", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetClient godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} models.Client
// @Router /clients/{id} [get]
func GetClient(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	client, err := clientService.GetClient(id)
	if err != nil {
		respondError(c, "Failed to retrieve client", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   client,
	})
}

// CreateClient godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client payload"
// @Success 201 {object} models.Client
// @Router /clients [post]
func CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	client, err := clientService.CreateClient(req)
	if err != nil {
		respondError(c, "Failed to create client", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   client,
	})
}

// UpdateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Client payload"
// @Success 200 {object} models.Client
// @Router /clients/{id} [put]
func UpdateClient(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	client, err := clientService.UpdateClient(id, req)
	if err != nil {
		respondError(c, "Failed to update client", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   client,
	})
}

// DeleteClient godoc
// @Summary Delete a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} map[string]string
// @Router /clients/{id} [delete]
func DeleteClient(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := clientService.DeleteClient(id); err != nil {
		respondError(c, "Failed to delete client", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client deleted successfully",
	})
}

// AddClientContact godoc
// @Summary Add a contact to a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param contact body dto.ContactRequest true "Contact payload"
// @Success 201 {object} models.ClientContact
// @Router /clients/{id}/contacts [post]
func AddClientContact(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	contact, err := clientService.AddContact(id, req)
	if err != nil {
		respondError(c, "Failed to add contact", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   contact,
	})
}

// UpdateClientContact godoc
// @Summary Update a client contact
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param contactId path string true "Contact ID"
// @Param contact body dto.ContactRequest true "Contact payload"
// @Success 200 {object} models.ClientContact
// @Router /clients/{id}/contacts/{contactId} [put]
func UpdateClientContact(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}
	contactID, ok := requireUUIDParam(c, "contactId")
	if !ok {
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	contact, err := clientService.UpdateContact(id, contactID, req)
	if err != nil {
		respondError(c, "Failed to update contact", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   contact,
	})
}

// DeleteClientContact godoc
// @Summary Delete a client contact
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Param contactId path string true "Contact ID"
// @Success 200 {object} map[string]string
// @Router /clients/{id}/contacts/{contactId} [delete]
func DeleteClientContact(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}
	contactID, ok := requireUUIDParam(c, "contactId")
	if !ok {
		return
	}

	if err := clientService.DeleteContact(id, contactID); err != nil {
		respondError(c, "Failed to delete contact", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contact deleted successfully",
	})
}
