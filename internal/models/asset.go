package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/juninatt/trader-journal/internal/validator"
)

// AssetClass represents the kind of instrument an asset is.
type AssetClass string

const (
	AssetClassStock       AssetClass = "STOCK"
	AssetClassETF         AssetClass = "ETF"
	AssetClassFund        AssetClass = "FUND"
	AssetClassCertificate AssetClass = "CERTIFICATE"
	AssetClassCrypto      AssetClass = "CRYPTO"
	AssetClassBond        AssetClass = "BOND"
	AssetClassIndex       AssetClass = "INDEX"
	AssetClassOption      AssetClass = "OPTION"
	AssetClassFuture      AssetClass = "FUTURE"
	AssetClassCommodity   AssetClass = "COMMODITY"
	AssetClassRealEstate  AssetClass = "REAL_ESTATE"
)

// IsValid reports whether c is a known asset class.
func (c AssetClass) IsValid() bool {
	switch c {
	case AssetClassStock, AssetClassETF, AssetClassFund, AssetClassCertificate,
		AssetClassCrypto, AssetClassBond, AssetClassIndex, AssetClassOption,
		AssetClassFuture, AssetClassCommodity, AssetClassRealEstate:
		return true
	}
	return false
}

// Exchange is the marketplace an asset is listed on.
type Exchange string

const (
	ExchangeNasdaq    Exchange = "NASDAQ"
	ExchangeNYSE      Exchange = "NYSE"
	ExchangeStockholm Exchange = "STOCKHOLM"
	ExchangeBinance   Exchange = "BINANCE"
	ExchangeXetra     Exchange = "XETRA"
	ExchangeLondon    Exchange = "LONDON"
	ExchangeOther     Exchange = "OTHER"
)

// IsValid reports whether e is a known exchange.
func (e Exchange) IsValid() bool {
	switch e {
	case ExchangeNasdaq, ExchangeNYSE, ExchangeStockholm, ExchangeBinance,
		ExchangeXetra, ExchangeLondon, ExchangeOther:
		return true
	}
	return false
}

// Sector is a broad economic sector tag.
type Sector string

const (
	SectorTechnology        Sector = "TECHNOLOGY"
	SectorHealthcare        Sector = "HEALTHCARE"
	SectorFinancials        Sector = "FINANCIALS"
	SectorEnergy            Sector = "ENERGY"
	SectorIndustrials       Sector = "INDUSTRIALS"
	SectorUtilities         Sector = "UTILITIES"
	SectorRealEstate        Sector = "REAL_ESTATE"
	SectorConsumerDefensive Sector = "CONSUMER_DEFENSIVE"
	SectorOther             Sector = "OTHER"
)

// IsValid reports whether s is a known sector.
func (s Sector) IsValid() bool {
	switch s {
	case SectorTechnology, SectorHealthcare, SectorFinancials, SectorEnergy,
		SectorIndustrials, SectorUtilities, SectorRealEstate,
		SectorConsumerDefensive, SectorOther:
		return true
	}
	return false
}

// Industry is a narrower industry tag.
type Industry string

const (
	IndustrySemiconductors        Industry = "SEMICONDUCTORS"
	IndustrySoftware              Industry = "SOFTWARE"
	IndustryBiotechnology         Industry = "BIOTECHNOLOGY"
	IndustryPharmaceuticals       Industry = "PHARMACEUTICALS"
	IndustryBanking               Industry = "BANKING"
	IndustryInsurance             Industry = "INSURANCE"
	IndustryEcommerce             Industry = "ECOMMERCE"
	IndustryTelecommunications    Industry = "TELECOMMUNICATIONS"
	IndustryRenewableEnergy       Industry = "RENEWABLE_ENERGY"
	IndustryOilGas                Industry = "OIL_GAS"
	IndustryDefense               Industry = "DEFENSE"
	IndustryAerospace             Industry = "AEROSPACE"
	IndustryRetail                Industry = "RETAIL"
	IndustryTransportation        Industry = "TRANSPORTATION"
	IndustryManufacturing         Industry = "MANUFACTURING"
	IndustryConstruction          Industry = "CONSTRUCTION"
	IndustryEducation             Industry = "EDUCATION"
	IndustryEntertainment         Industry = "ENTERTAINMENT"
	IndustryFoodBeverage          Industry = "FOOD_BEVERAGE"
	IndustryAgriculture           Industry = "AGRICULTURE"
	IndustryRealEstateDevelopment Industry = "REAL_ESTATE_DEVELOPMENT"
	IndustryOther                 Industry = "OTHER"
)

var industries = map[Industry]bool{
	IndustrySemiconductors: true, IndustrySoftware: true, IndustryBiotechnology: true,
	IndustryPharmaceuticals: true, IndustryBanking: true, IndustryInsurance: true,
	IndustryEcommerce: true, IndustryTelecommunications: true, IndustryRenewableEnergy: true,
	IndustryOilGas: true, IndustryDefense: true, IndustryAerospace: true,
	IndustryRetail: true, IndustryTransportation: true, IndustryManufacturing: true,
	IndustryConstruction: true, IndustryEducation: true, IndustryEntertainment: true,
	IndustryFoodBeverage: true, IndustryAgriculture: true, IndustryRealEstateDevelopment: true,
	IndustryOther: true,
}

// IsValid reports whether i is a known industry.
func (i Industry) IsValid() bool { return industries[i] }

func init() {
	validator.RegisterRule("asset_class", func(v string) bool { return AssetClass(v).IsValid() })
	validator.RegisterRule("exchange", func(v string) bool { return Exchange(v).IsValid() })
	validator.RegisterRule("sector", func(v string) bool { return Sector(v).IsValid() })
	validator.RegisterRule("industry", func(v string) bool { return Industry(v).IsValid() })
}

// Asset is shared reference data for a tradable instrument. Trades point at
// an asset but never own it.
type Asset struct {
	Base
	Name                string                        `gorm:"not null" json:"name" validate:"required"`
	Ticker              string                        `gorm:"not null;index" json:"ticker" validate:"required"`
	ISIN                string                        `gorm:"size:20;not null;uniqueIndex" json:"isin" validate:"required,len=12"`
	AssetClass          AssetClass                    `gorm:"not null" json:"asset_class" validate:"required,asset_class"`
	Currency            string                        `gorm:"size:3;not null" json:"currency" validate:"required,iso4217"`
	Exchange            Exchange                      `gorm:"not null" json:"exchange" validate:"required,exchange"`
	IsLeveraged         bool                          `gorm:"not null;default:false" json:"is_leveraged"`
	LeverageRatio       decimal.NullDecimal           `gorm:"type:decimal(10,4)" json:"leverage_ratio" validate:"omitempty,decimal_gte=1"`
	IsInvestmentCompany bool                          `gorm:"not null;default:false" json:"is_investment_company"`
	DividendYield       decimal.NullDecimal           `gorm:"type:decimal(10,4)" json:"dividend_yield" validate:"omitempty,decimal_gte=0"`
	Sectors             datatypes.JSONSlice[Sector]   `json:"sectors" validate:"dive,sector"`
	Industries          datatypes.JSONSlice[Industry] `json:"industries" validate:"dive,industry"`
	LastUpdated         time.Time                     `gorm:"not null" json:"last_updated"`
}

// NewAsset creates an unleveraged asset with a fresh ID.
func NewAsset(name, ticker, isin string, class AssetClass, currency string, exchange Exchange) *Asset {
	a := &Asset{
		Name:       name,
		Ticker:     ticker,
		ISIN:       isin,
		AssetClass: class,
		Currency:   currency,
		Exchange:   exchange,
	}
	a.ensureID()
	a.Touch()
	return a
}

// Touch refreshes LastUpdated. Every mutator calls it.
func (a *Asset) Touch() {
	a.LastUpdated = time.Now().UTC()
}

// SetLeverage marks the asset as leveraged with the given ratio, or clears
// leverage when ratio is nil.
func (a *Asset) SetLeverage(ratio *decimal.Decimal) {
	if ratio == nil {
		a.IsLeveraged = false
		a.LeverageRatio = decimal.NullDecimal{}
	} else {
		a.IsLeveraged = true
		a.LeverageRatio = decimal.NewNullDecimal(*ratio)
	}
	a.Touch()
}

// SetDividendYield records the yield, or clears it when yield is nil.
func (a *Asset) SetDividendYield(yield *decimal.Decimal) {
	if yield == nil {
		a.DividendYield = decimal.NullDecimal{}
	} else {
		a.DividendYield = decimal.NewNullDecimal(*yield)
	}
	a.Touch()
}

// SetTags replaces the sector and industry tags.
func (a *Asset) SetTags(sectors []Sector, industries []Industry) {
	a.Sectors = datatypes.NewJSONSlice(sectors)
	a.Industries = datatypes.NewJSONSlice(industries)
	a.Touch()
}

// Validate checks field constraints and the leverage rule.
func (a *Asset) Validate() error {
	if err := validator.Struct(a); err != nil {
		return err
	}
	if a.IsLeveraged && !a.LeverageRatio.Valid {
		return validator.Failure("leverage_ratio is required when is_leveraged is set")
	}
	return nil
}

// BeforeSave refreshes LastUpdated on every write.
func (a *Asset) BeforeSave(tx *gorm.DB) error {
	a.Touch()
	return nil
}
