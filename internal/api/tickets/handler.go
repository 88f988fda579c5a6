package tickets

import (
	"net/http"

	"campus-portal/database"
	"campus-portal/internal/domain/tickets"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /tickets
func CreateTicket(c *gin.Context) {
	var input struct {
		Subject string `json:"subject" binding:"required"`
		Body    string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket := tickets.Ticket{
		UserID:        c.GetUint("user_id"),
		ReferenceCode: uuid.NewString(),
		Subject:       input.Subject,
		Body:          input.Body,
		Status:        tickets.StatusOpen,
	}
	if err := database.DB.Create(&ticket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// GET /tickets
func ListMyTickets(c *gin.Context) {
	var result []tickets.Ticket
	if err := database.DB.Where("user_id = ?", c.GetUint("user_id")).
		Order("created_at DESC").
		Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": result})
}

// GET /tickets/:id — owner or admin only.
func GetTicket(c *gin.Context) {
	var ticket tickets.Ticket
	if err := database.DB.Preload("Replies").First(&ticket, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	if ticket.UserID != c.GetUint("user_id") && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// POST /tickets/:id/replies — a student follow-up reopens an answered
// ticket; a staff reply marks it answered. Closed tickets take no replies.
func ReplyToTicket(c *gin.Context) {
	var ticket tickets.Ticket
	if err := database.DB.First(&ticket, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	isStaff := c.GetString("role") == "admin"
	if ticket.UserID != c.GetUint("user_id") && !isStaff {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	if ticket.Status == tickets.StatusClosed {
		c.JSON(http.StatusConflict, gin.H{"error": "Ticket is closed"})
		return
	}

	var input struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := tickets.Reply{
		TicketID:  ticket.ID,
		AuthorID:  c.GetUint("user_id"),
		FromStaff: isStaff,
		Body:      input.Body,
	}
	if err := database.DB.Create(&reply).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reply"})
		return
	}

	newStatus := tickets.StatusOpen
	if isStaff {
		newStatus = tickets.StatusAnswered
	}
	database.DB.Model(&ticket).Update("status", newStatus)

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// GET /admin/tickets?status=open
func ListAllTickets(c *gin.Context) {
	query := database.DB.Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var result []tickets.Ticket
	if err := query.Order("created_at ASC").Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": result})
}

// POST /admin/tickets/:id/close
func CloseTicket(c *gin.Context) {
	var ticket tickets.Ticket
	if err := database.DB.First(&ticket, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	if err := database.DB.Model(&ticket).Update("status", tickets.StatusClosed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close ticket"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ticket closed"})
}
