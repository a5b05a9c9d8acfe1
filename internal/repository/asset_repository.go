package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/models"
)

// assetRepository stores asset reference data.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new AssetRepository.
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

// Create validates and inserts a new asset.
func (r *assetRepository) Create(asset *models.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	if err := r.db.Create(asset).Error; err != nil {
		return assetWriteError(err)
	}
	return nil
}

// Update validates and writes every column of an existing asset.
func (r *assetRepository) Update(asset *models.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	res := r.db.Model(asset).Select("*").Omit("id", "created_at").Updates(asset)
	if res.Error != nil {
		return assetWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

// FindByID returns the asset with id.
func (r *assetRepository) FindByID(id string) (*models.Asset, bool, error) {
	return r.findOne(r.db.Where("id = ?", id))
}

// FindByISIN returns the asset with the given ISIN.
func (r *assetRepository) FindByISIN(isin string) (*models.Asset, bool, error) {
	return r.findOne(r.db.Where("isin = ?", isin))
}

func (r *assetRepository) findOne(q *gorm.DB) (*models.Asset, bool, error) {
	var asset models.Asset
	if err := q.First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, true, nil
}

// FindAll returns every asset ordered by ticker.
func (r *assetRepository) FindAll() ([]*models.Asset, error) {
	var assets []*models.Asset
	if err := r.db.Order("ticker ASC").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

func assetWriteError(err error) error {
	if isUniqueConstraintError(err) {
		return apperrors.ErrDuplicateISIN
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
