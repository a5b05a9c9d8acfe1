package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/juninatt/trader-journal/internal/pagination"
	"github.com/juninatt/trader-journal/internal/services"
)

// JournalEntryHandler handles journal entry requests.
type JournalEntryHandler struct {
	entryService services.JournalEntryServicer
}

// NewJournalEntryHandler creates a new JournalEntryHandler.
func NewJournalEntryHandler(entryService services.JournalEntryServicer) *JournalEntryHandler {
	return &JournalEntryHandler{entryService: entryService}
}

// JournalEntryRequest represents the payload for creating or replacing an entry.
type JournalEntryRequest struct {
	Date            string           `json:"date" binding:"required,datetime=2006-01-02"`
	Comment         string           `json:"comment" binding:"max=500"`
	Notes           string           `json:"notes" binding:"max=5000"`
	CashBalance     decimal.Decimal  `json:"cash_balance" swaggertype:"string"`
	InvestedCapital *decimal.Decimal `json:"invested_capital" binding:"omitempty,decimal_gte=0" swaggertype:"string"`
}

func (r JournalEntryRequest) input() (services.JournalEntryInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return services.JournalEntryInput{}, err
	}
	return services.JournalEntryInput{
		Date:            date,
		Comment:         r.Comment,
		Notes:           r.Notes,
		CashBalance:     r.CashBalance,
		InvestedCapital: r.InvestedCapital,
	}, nil
}

// CreateEntry handles opening the journal for a new day.
// @Summary     Create journal entry
// @Description Create the journal entry for one calendar day
// @Tags        journal-entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body JournalEntryRequest true "Journal entry"
// @Success     201 {object} JournalEntryResponse "Journal entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "An entry for this date exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries [post]
func (h *JournalEntryHandler) CreateEntry(c *gin.Context) {
	var req JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}
	input, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.entryService.CreateEntry(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"journal_entry": newJournalEntryResponse(entry)})
}

// ListEntries handles listing journal entries, most recent first.
// @Summary     List journal entries
// @Description Get a paginated list of journal entries ordered by date descending
// @Tags        journal-entries
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[JournalEntryResponse] "Paginated journal entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries [get]
func (h *JournalEntryHandler) ListEntries(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		invalidInput(c, err)
		return
	}

	result, err := h.entryService.ListEntries(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.Map(result, journalEntryResponses))
}

// GetLatestEntry handles retrieving the most recent journal entry.
// @Summary     Get latest journal entry
// @Description Get the journal entry with the most recent date
// @Tags        journal-entries
// @Produce     json
// @Success     200 {object} JournalEntryResponse "Latest journal entry"
// @Failure     404 {object} ErrorResponse "Journal is empty"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries/latest [get]
func (h *JournalEntryHandler) GetLatestEntry(c *gin.Context) {
	entry, err := h.entryService.GetLatestEntry()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"journal_entry": newJournalEntryResponse(entry)})
}

// GetEntry handles retrieving one journal entry.
// @Summary     Get journal entry by ID
// @Description Get a journal entry with its snapshots and sales
// @Tags        journal-entries
// @Produce     json
// @Param       id path string true "Journal entry ID"
// @Success     200 {object} JournalEntryResponse "Journal entry"
// @Failure     404 {object} ErrorResponse "Journal entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries/{id} [get]
func (h *JournalEntryHandler) GetEntry(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.entryService.GetEntry(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"journal_entry": newJournalEntryResponse(entry)})
}

// AnalyzeEntry handles computing the journal figures of one entry.
// @Summary     Analyze journal entry
// @Description Get totals, averages, counts and weekend flags for a journal entry
// @Tags        journal-entries
// @Produce     json
// @Param       id path string true "Journal entry ID"
// @Success     200 {object} analysis.Summary "Entry analysis"
// @Failure     404 {object} ErrorResponse "Journal entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries/{id}/analysis [get]
func (h *JournalEntryHandler) AnalyzeEntry(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.entryService.AnalyzeEntry(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": summary})
}

// UpdateEntry handles replacing the editable fields of an entry.
// @Summary     Update journal entry
// @Description Replace the date, comment, notes and balances of a journal entry
// @Tags        journal-entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Journal entry ID"
// @Param       request body JournalEntryRequest true "Journal entry"
// @Success     200 {object} JournalEntryResponse "Journal entry updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Journal entry not found"
// @Failure     409 {object} ErrorResponse "An entry for this date exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries/{id} [put]
func (h *JournalEntryHandler) UpdateEntry(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}
	input, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.entryService.UpdateEntry(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"journal_entry": newJournalEntryResponse(entry)})
}

// DeleteEntry handles removing an entry with its snapshots and sales.
// @Summary     Delete journal entry
// @Description Delete a journal entry, its snapshots and their sales
// @Tags        journal-entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Journal entry ID"
// @Success     200 {object} map[string]string "Journal entry deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Journal entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries/{id} [delete]
func (h *JournalEntryHandler) DeleteEntry(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.entryService.DeleteEntry(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted successfully"})
}
