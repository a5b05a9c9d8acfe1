package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/services"
)

// AssetHandler handles asset reference data requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// AssetRequest represents the payload for creating or replacing an asset.
type AssetRequest struct {
	Name                string            `json:"name" binding:"required,min=1,max=200"`
	Ticker              string            `json:"ticker" binding:"required,min=1,max=20"`
	ISIN                string            `json:"isin" binding:"required,len=12,alphanum"`
	AssetClass          models.AssetClass `json:"asset_class" binding:"required,asset_class"`
	Currency            string            `json:"currency" binding:"required,len=3"`
	Exchange            models.Exchange   `json:"exchange" binding:"required,exchange"`
	LeverageRatio       *decimal.Decimal  `json:"leverage_ratio" binding:"omitempty,decimal_gte=1" swaggertype:"string"`
	IsInvestmentCompany bool              `json:"is_investment_company"`
	DividendYield       *decimal.Decimal  `json:"dividend_yield" binding:"omitempty,decimal_gte=0" swaggertype:"string"`
	Sectors             []models.Sector   `json:"sectors" binding:"omitempty,dive,sector"`
	Industries          []models.Industry `json:"industries" binding:"omitempty,dive,industry"`
}

func (r AssetRequest) input() services.AssetInput {
	return services.AssetInput{
		Name:                r.Name,
		Ticker:              r.Ticker,
		ISIN:                r.ISIN,
		AssetClass:          r.AssetClass,
		Currency:            r.Currency,
		Exchange:            r.Exchange,
		LeverageRatio:       r.LeverageRatio,
		IsInvestmentCompany: r.IsInvestmentCompany,
		DividendYield:       r.DividendYield,
		Sectors:             r.Sectors,
		Industries:          r.Industries,
	}
}

// CreateAsset handles registering a new asset.
// @Summary     Create asset
// @Description Register a tradable asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "ISIN already registered"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	asset, err := h.assetService.CreateAsset(req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// ListAssets handles listing every asset.
// @Summary     List assets
// @Description Get every registered asset ordered by ticker
// @Tags        assets
// @Produce     json
// @Success     200 {array}  models.Asset "Assets"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.ListAssets()
	if err != nil {
		respondWithError(c, err)
		return
	}
	if assets == nil {
		assets = []*models.Asset{}
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// GetAsset handles retrieving one asset.
// @Summary     Get asset by ID
// @Description Get a registered asset
// @Tags        assets
// @Produce     json
// @Param       id path string true "Asset ID"
// @Success     200 {object} models.Asset "Asset"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAsset(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// UpdateAsset handles replacing the fields of an asset.
// @Summary     Update asset
// @Description Replace the fields of a registered asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string       true "Asset ID"
// @Param       request body AssetRequest true "Asset details"
// @Success     200 {object} models.Asset "Asset updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "ISIN already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	asset, err := h.assetService.UpdateAsset(id, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}
