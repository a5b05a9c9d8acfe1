package services

import (
	"testing"

	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/testutil"
)

func appleInput() AssetInput {
	return AssetInput{
		Name:       "Apple Inc",
		Ticker:     "aapl",
		ISIN:       "us0378331005",
		AssetClass: models.AssetClassStock,
		Currency:   "usd",
		Exchange:   models.ExchangeNasdaq,
		Sectors:    []models.Sector{models.SectorTechnology},
	}
}

func TestCreateAsset(t *testing.T) {
	t.Run("normalises_codes", func(t *testing.T) {
		ts := setupServices(t)

		asset, err := ts.assets.CreateAsset(appleInput())
		testutil.AssertNoError(t, err)
		if asset.Ticker != "AAPL" || asset.ISIN != "US0378331005" || asset.Currency != "USD" {
			t.Errorf("expected upper-cased codes, got %s %s %s", asset.Ticker, asset.ISIN, asset.Currency)
		}
		if asset.LastUpdated.IsZero() {
			t.Error("expected LastUpdated to be set")
		}
	})

	t.Run("duplicate_isin", func(t *testing.T) {
		ts := setupServices(t)
		_, err := ts.assets.CreateAsset(appleInput())
		testutil.AssertNoError(t, err)

		_, err = ts.assets.CreateAsset(appleInput())
		testutil.AssertAppError(t, err, "DUPLICATE_ISIN")
	})

	t.Run("leverage_below_one", func(t *testing.T) {
		ts := setupServices(t)
		input := appleInput()
		input.LeverageRatio = decPtr("0.5")

		_, err := ts.assets.CreateAsset(input)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
	})
}

func TestUpdateAsset(t *testing.T) {
	ts := setupServices(t)
	asset, err := ts.assets.CreateAsset(appleInput())
	testutil.AssertNoError(t, err)
	before := asset.LastUpdated

	input := appleInput()
	input.DividendYield = decPtr("0.55")
	input.LeverageRatio = decPtr("3")
	updated, err := ts.assets.UpdateAsset(asset.ID, input)
	testutil.AssertNoError(t, err)
	if !updated.IsLeveraged || updated.LastUpdated.Before(before) {
		t.Error("expected leverage set and LastUpdated refreshed")
	}

	loaded, err := ts.assets.GetAsset(asset.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertDecimal(t, "dividend yield", loaded.DividendYield.Decimal, "0.55")

	_, err = ts.assets.UpdateAsset("missing", input)
	testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")

	all, err := ts.assets.ListAssets()
	testutil.AssertNoError(t, err)
	if len(all) != 1 {
		t.Errorf("expected 1 asset, got %d", len(all))
	}
}
