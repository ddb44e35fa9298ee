package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/services"
)

var ticketService = services.NewTicketService()

// ListTickets godoc
// @Summary List tickets with pagination and filtering
// @Tags tickets
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param clientId query string false "Filter by client"
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param search query string false "Search term for title or display ID"
// @Success 200 {object} dto.TicketListResponse
// @Router /tickets [get]
func ListTickets(c *gin.Context) {
	filter := dto.TicketFilter{
		Pagination: parsePagination(c),
		ClientID:   c.Query("clientId"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Search:     c.Query("search"),
	}

	response, err := ticketService.ListTickets(filter)
	if err != nil {
		respondError(c, "Failed to retrieve tickets", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetTicket godoc
// @Summary Get a ticket with its messages and linked vulnerabilities
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} models.Ticket
// @Router /tickets/{id} [get]
func GetTicket(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	ticket, err := ticketService.GetTicket(id)
	if err != nil {
		respondError(c, "Failed to retrieve ticket", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   ticket,
	})
}

// CreateTicket godoc
// @Summary Create a ticket with a generated display ID
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body dto.CreateTicketRequest true "Ticket payload"
// @Success 201 {object} models.Ticket
// @Router /tickets [post]
func CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	ticket, err := ticketService.CreateTicket(req)
	if err != nil {
		respondError(c, "Failed to create ticket", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   ticket,
	})
}

// UpdateTicket godoc
// @Summary Update a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param ticket body dto.UpdateTicketRequest true "Ticket payload"
// @Success 200 {object} models.Ticket
// @Router /tickets/{id} [put]
func UpdateTicket(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	ticket, err := ticketService.UpdateTicket(id, req)
	if err != nil {
		respondError(c, "Failed to update ticket", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   ticket,
	})
}

// DeleteTicket godoc
// @Summary Soft-delete a ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} map[string]string
// @Router /tickets/{id} [delete]
func DeleteTicket(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := ticketService.DeleteTicket(id); err != nil {
		respondError(c, "Failed to delete ticket", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ticket deleted successfully",
	})
}

// ListTicketMessages godoc
// @Summary List the messages of a ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {array} models.TicketMessage
// @Router /tickets/{id}/messages [get]
func ListTicketMessages(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	messages, err := ticketService.ListMessages(id)
	if err != nil {
		respondError(c, "Failed to retrieve messages", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   messages,
	})
}

// AddTicketMessage godoc
// @Summary Add a message to a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param message body dto.CreateTicketMessageRequest true "Message payload"
// @Success 201 {object} models.TicketMessage
// @Router /tickets/{id}/messages [post]
func AddTicketMessage(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateTicketMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	message, err := ticketService.AddMessage(id, req)
	if err != nil {
		respondError(c, "Failed to add message", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   message,
	})
}
