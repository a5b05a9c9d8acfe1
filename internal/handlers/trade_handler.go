package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/services"
)

// TradeHandler handles trade ledger requests: trades, their daily
// snapshots and executed sales.
type TradeHandler struct {
	tradeService services.TradeServicer
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeService services.TradeServicer) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// OpenTradeRequest represents the payload for opening a trade on an entry.
type OpenTradeRequest struct {
	AssetID           *string           `json:"asset_id" binding:"omitempty,uuid"`
	Label             string            `json:"label" binding:"max=100"`
	Quantity          int               `json:"quantity" binding:"required,gt=0"`
	EntryPrice        decimal.Decimal   `json:"entry_price" binding:"decimal_gt=0" swaggertype:"string"`
	BuyFee            decimal.Decimal   `json:"buy_fee" binding:"decimal_gte=0" swaggertype:"string"`
	EntryTime         *models.TimeOfDay `json:"entry_time" swaggertype:"string" example:"09:30"`
	Notes             string            `json:"notes" binding:"max=5000"`
	OpenPrice         *decimal.Decimal  `json:"open_price" binding:"omitempty,decimal_gt=0" swaggertype:"string"`
	ClosePrice        *decimal.Decimal  `json:"close_price" binding:"omitempty,decimal_gte=0" swaggertype:"string"`
	RemainingQuantity *int              `json:"remaining_quantity" binding:"omitempty,gte=0"`
}

// SnapshotRequest represents the payload for recording a day's snapshot.
type SnapshotRequest struct {
	TradeID           string           `json:"trade_id" binding:"required,uuid"`
	RemainingQuantity int              `json:"remaining_quantity" binding:"gte=0"`
	OpenPrice         decimal.Decimal  `json:"open_price" binding:"decimal_gt=0" swaggertype:"string"`
	ClosePrice        *decimal.Decimal `json:"close_price" binding:"omitempty,decimal_gte=0" swaggertype:"string"`
	Notes             string           `json:"notes" binding:"max=5000"`
}

// SaleRequest represents the payload for recording an executed sale.
type SaleRequest struct {
	Quantity          int               `json:"quantity" binding:"required,gt=0"`
	SellPrice         decimal.Decimal   `json:"sell_price" binding:"decimal_gt=0" swaggertype:"string"`
	SellFee           decimal.Decimal   `json:"sell_fee" binding:"decimal_gte=0" swaggertype:"string"`
	SellTime          *models.TimeOfDay `json:"sell_time" swaggertype:"string" example:"15:45"`
	RemainingQuantity *int              `json:"remaining_quantity" binding:"omitempty,gte=0"`
}

// OpenTrade handles opening a trade with its first snapshot.
// @Summary     Open trade
// @Description Open a trade on a journal entry, recording its first daily snapshot
// @Tags        trades
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string           true "Journal entry ID"
// @Param       request body OpenTradeRequest true "Trade details"
// @Success     201 {object} TradeResponse "Trade opened"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Journal entry or asset not found"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries/{id}/trades [post]
func (h *TradeHandler) OpenTrade(c *gin.Context) {
	entryID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req OpenTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	trade, err := h.tradeService.OpenTrade(entryID, services.OpenTradeInput{
		AssetID:           req.AssetID,
		Label:             req.Label,
		Quantity:          req.Quantity,
		EntryPrice:        req.EntryPrice,
		BuyFee:            req.BuyFee,
		EntryTime:         req.EntryTime,
		Notes:             req.Notes,
		OpenPrice:         req.OpenPrice,
		ClosePrice:        req.ClosePrice,
		RemainingQuantity: req.RemainingQuantity,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trade": newTradeResponse(trade)})
}

// RecordSnapshot handles recording a day's state of an existing trade.
// @Summary     Record trade snapshot
// @Description Record the state of an already open trade on a journal entry
// @Tags        trades
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "Journal entry ID"
// @Param       request body SnapshotRequest true "Snapshot details"
// @Success     201 {object} SnapshotResponse "Snapshot recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Journal entry or trade not found"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries/{id}/snapshots [post]
func (h *TradeHandler) RecordSnapshot(c *gin.Context) {
	entryID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	snapshot, err := h.tradeService.RecordSnapshot(entryID, services.SnapshotInput{
		TradeID:           req.TradeID,
		RemainingQuantity: req.RemainingQuantity,
		OpenPrice:         req.OpenPrice,
		ClosePrice:        req.ClosePrice,
		Notes:             req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": newSnapshotResponse(snapshot)})
}

// RecordSale handles recording an executed sale on a snapshot.
// @Summary     Record executed sale
// @Description Record a partial or full sale on one of the entry's snapshots
// @Tags        trades
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path string      true "Journal entry ID"
// @Param       snapshotId path string      true "Snapshot ID"
// @Param       request    body SaleRequest true "Sale details"
// @Success     201 {object} models.ExecutedSale "Sale recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Journal entry or snapshot not found"
// @Failure     422 {object} ErrorResponse "Quantity exceeded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries/{id}/snapshots/{snapshotId}/sales [post]
func (h *TradeHandler) RecordSale(c *gin.Context) {
	entryID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	snapshotID, err := pathID(c, "snapshotId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	sale, err := h.tradeService.RecordSale(entryID, snapshotID, services.SaleInput{
		Quantity:          req.Quantity,
		SellPrice:         req.SellPrice,
		SellFee:           req.SellFee,
		SellTime:          req.SellTime,
		RemainingQuantity: req.RemainingQuantity,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sale": sale})
}

// RemoveSnapshot handles deleting a snapshot with its sales.
// @Summary     Delete trade snapshot
// @Description Delete a snapshot and its sales; a trade left without snapshots is deleted too
// @Tags        trades
// @Produce     json
// @Security    BearerAuth
// @Param       id         path string true "Journal entry ID"
// @Param       snapshotId path string true "Snapshot ID"
// @Success     200 {object} map[string]string "Snapshot deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Journal entry or snapshot not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal-entries/{id}/snapshots/{snapshotId} [delete]
func (h *TradeHandler) RemoveSnapshot(c *gin.Context) {
	entryID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	snapshotID, err := pathID(c, "snapshotId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.tradeService.RemoveSnapshot(entryID, snapshotID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Snapshot deleted successfully"})
}

// GetTrade handles retrieving a trade with its ledger figures.
// @Summary     Get trade by ID
// @Description Get a trade with its snapshot history and ledger figures
// @Tags        trades
// @Produce     json
// @Param       id path string true "Trade ID"
// @Success     200 {object} TradeResponse "Trade"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades/{id} [get]
func (h *TradeHandler) GetTrade(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	trade, err := h.tradeService.GetTrade(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trade": newTradeResponse(trade)})
}

// DeleteTrade handles removing a trade with all of its snapshots and sales.
// @Summary     Delete trade
// @Description Delete a trade across every journal entry it appears in
// @Tags        trades
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trade ID"
// @Success     200 {object} map[string]string "Trade deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades/{id} [delete]
func (h *TradeHandler) DeleteTrade(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.tradeService.DeleteTrade(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trade deleted successfully"})
}
