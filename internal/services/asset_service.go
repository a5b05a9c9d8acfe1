package services

import (
	"strings"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/repository"
)

// assetService handles asset reference data.
type assetService struct {
	assets repository.AssetRepository
	audit  AuditServicer
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(assets repository.AssetRepository, audit AuditServicer) AssetServicer {
	return &assetService{assets: assets, audit: audit}
}

// CreateAsset registers a new asset. ISINs are unique.
func (s *assetService) CreateAsset(input AssetInput) (*models.Asset, error) {
	asset := models.NewAsset(
		strings.TrimSpace(input.Name),
		strings.ToUpper(strings.TrimSpace(input.Ticker)),
		strings.ToUpper(strings.TrimSpace(input.ISIN)),
		input.AssetClass,
		strings.ToUpper(input.Currency),
		input.Exchange,
	)
	applyAssetInput(asset, input)

	if err := s.assets.Create(asset); err != nil {
		return nil, err
	}

	s.audit.Log(models.AuditActionCreate, "asset", asset.ID, map[string]any{
		"isin":   asset.ISIN,
		"ticker": asset.Ticker,
	})
	return asset, nil
}

// UpdateAsset replaces the editable fields of an asset.
func (s *assetService) UpdateAsset(id string, input AssetInput) (*models.Asset, error) {
	asset, err := s.GetAsset(id)
	if err != nil {
		return nil, err
	}

	asset.Name = strings.TrimSpace(input.Name)
	asset.Ticker = strings.ToUpper(strings.TrimSpace(input.Ticker))
	asset.ISIN = strings.ToUpper(strings.TrimSpace(input.ISIN))
	asset.AssetClass = input.AssetClass
	asset.Currency = strings.ToUpper(input.Currency)
	asset.Exchange = input.Exchange
	applyAssetInput(asset, input)

	if err := s.assets.Update(asset); err != nil {
		return nil, err
	}

	s.audit.Log(models.AuditActionUpdate, "asset", asset.ID, map[string]any{
		"isin":   asset.ISIN,
		"ticker": asset.Ticker,
	})
	return asset, nil
}

func applyAssetInput(asset *models.Asset, input AssetInput) {
	asset.IsInvestmentCompany = input.IsInvestmentCompany
	asset.SetLeverage(input.LeverageRatio)
	asset.SetDividendYield(input.DividendYield)
	asset.SetTags(input.Sectors, input.Industries)
}

// GetAsset returns the asset with id.
func (s *assetService) GetAsset(id string) (*models.Asset, error) {
	asset, found, err := s.assets.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrAssetNotFound
	}
	return asset, nil
}

// ListAssets returns every asset ordered by ticker.
func (s *assetService) ListAssets() ([]*models.Asset, error) {
	return s.assets.FindAll()
}
