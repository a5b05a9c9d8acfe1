package handlers

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles the route handlers of the API.
type Handlers struct {
	Entries *JournalEntryHandler
	Trades  *TradeHandler
	Assets  *AssetHandler
	Health  *HealthHandler
}

// RegisterRoutes mounts the API on router. Reads are public and every
// mutating route runs behind auth.
func RegisterRoutes(router *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	if h.Health != nil {
		router.GET("/api/health", h.Health.Health)
	}

	v1 := router.Group("/api/v1")
	protected := v1.Group("/", auth)

	entries := v1.Group("/journal-entries")
	entries.GET("", h.Entries.ListEntries)
	entries.GET("/latest", h.Entries.GetLatestEntry)
	entries.GET("/:id", h.Entries.GetEntry)
	entries.GET("/:id/analysis", h.Entries.AnalyzeEntry)

	protectedEntries := protected.Group("/journal-entries")
	protectedEntries.POST("", h.Entries.CreateEntry)
	protectedEntries.PUT("/:id", h.Entries.UpdateEntry)
	protectedEntries.DELETE("/:id", h.Entries.DeleteEntry)
	protectedEntries.POST("/:id/trades", h.Trades.OpenTrade)
	protectedEntries.POST("/:id/snapshots", h.Trades.RecordSnapshot)
	protectedEntries.POST("/:id/snapshots/:snapshotId/sales", h.Trades.RecordSale)
	protectedEntries.DELETE("/:id/snapshots/:snapshotId", h.Trades.RemoveSnapshot)

	v1.GET("/trades/:id", h.Trades.GetTrade)
	protected.DELETE("/trades/:id", h.Trades.DeleteTrade)

	v1.GET("/assets", h.Assets.ListAssets)
	v1.GET("/assets/:id", h.Assets.GetAsset)
	protected.POST("/assets", h.Assets.CreateAsset)
	protected.PUT("/assets/:id", h.Assets.UpdateAsset)
}
