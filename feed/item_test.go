package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedgate/feed"
	"github.com/dmitrymomot/feedgate/pkg/validator"
)

// minimalRecord returns a well-formed record carrying only the seven
// required fields. Numbers are float64, matching what encoding/json
// hands over.
func minimalRecord() map[string]any {
	return map[string]any{
		"product_id":         "sku-1",
		"title":              "Ceramic Mug",
		"description":        "A 12oz ceramic mug.",
		"link":               "https://shop.example.com/p/sku-1",
		"price":              map[string]any{"amount": "12.99", "currency": "USD"},
		"availability":       "in_stock",
		"inventory_quantity": float64(10),
	}
}

func TestValidateItemMinimalValid(t *testing.T) {
	item, vs := feed.ValidateItem(minimalRecord())

	require.True(t, vs.IsEmpty(), "unexpected violations: %v", vs)
	require.NotNil(t, item)
	assert.Equal(t, "sku-1", item.ProductID)
	assert.Equal(t, "Ceramic Mug", item.Title)
	assert.Equal(t, "https://shop.example.com/p/sku-1", item.Link)
	assert.Equal(t, feed.Money{Amount: "12.99", Currency: "USD"}, item.Price)
	assert.Equal(t, feed.AvailabilityInStock, item.Availability)
	assert.Equal(t, 10, item.InventoryQuantity)
}

func TestValidateItemRequiredFields(t *testing.T) {
	required := []string{
		"product_id", "title", "description", "link",
		"price", "availability", "inventory_quantity",
	}

	for _, field := range required {
		t.Run("missing "+field, func(t *testing.T) {
			rec := minimalRecord()
			delete(rec, field)

			item, vs := feed.ValidateItem(rec)

			require.Nil(t, item)
			require.Len(t, vs, 1, "expected exactly one violation, got: %v", vs)
			assert.Equal(t, field, vs[0].Path)
			assert.Equal(t, validator.CodeMissingRequiredField, vs[0].Code)
		})
	}

	t.Run("inventory quantity beyond the int range is out of range", func(t *testing.T) {
		rec := minimalRecord()
		rec["inventory_quantity"] = 1e30

		item, vs := feed.ValidateItem(rec)

		require.Nil(t, item)
		require.Len(t, vs, 1)
		assert.Equal(t, "inventory_quantity", vs[0].Path)
		assert.Equal(t, validator.CodeOutOfRange, vs[0].Code)
	})

	t.Run("no short-circuit when several required fields are missing", func(t *testing.T) {
		rec := minimalRecord()
		delete(rec, "title")
		delete(rec, "price")
		delete(rec, "inventory_quantity")

		item, vs := feed.ValidateItem(rec)

		require.Nil(t, item)
		require.Len(t, vs, 3)
		assert.Equal(t, []string{"title", "price", "inventory_quantity"}, vs.Paths())
	})
}

func TestValidateItemPrice(t *testing.T) {
	t.Run("three fractional digits violate the amount format", func(t *testing.T) {
		rec := minimalRecord()
		rec["price"] = map[string]any{"amount": "12.345", "currency": "USD"}

		item, vs := feed.ValidateItem(rec)

		require.Nil(t, item)
		require.Len(t, vs, 1)
		assert.Equal(t, "price.amount", vs[0].Path)
		assert.Equal(t, validator.CodeInvalidFormat, vs[0].Code)
	})

	t.Run("lowercase currency is rejected, not upper-cased", func(t *testing.T) {
		rec := minimalRecord()
		rec["price"] = map[string]any{"amount": "12.99", "currency": "usd"}

		item, vs := feed.ValidateItem(rec)

		require.Nil(t, item)
		require.Len(t, vs, 1)
		assert.Equal(t, "price.currency", vs[0].Path)
		assert.Equal(t, validator.CodeInvalidFormat, vs[0].Code)
	})

	t.Run("non-object price reports at the field path", func(t *testing.T) {
		rec := minimalRecord()
		rec["price"] = "12.99 USD"

		item, vs := feed.ValidateItem(rec)

		require.Nil(t, item)
		require.Len(t, vs, 1)
		assert.Equal(t, "price", vs[0].Path)
		assert.Equal(t, validator.CodeInvalidFormat, vs[0].Code)
	})

	t.Run("amount and currency defects are both reported", func(t *testing.T) {
		rec := minimalRecord()
		rec["price"] = map[string]any{"amount": "free", "currency": "usd"}

		_, vs := feed.ValidateItem(rec)

		require.Len(t, vs, 2)
		assert.True(t, vs.Has("price.amount"))
		assert.True(t, vs.Has("price.currency"))
	})
}

func TestValidateItemSaleWindow(t *testing.T) {
	t.Run("inverted window yields exactly one cross-field violation", func(t *testing.T) {
		rec := minimalRecord()
		rec["sale_price_effective_start"] = "2025-06-01T00:00:00Z"
		rec["sale_price_effective_end"] = "2025-05-01T00:00:00Z"

		item, vs := feed.ValidateItem(rec)

		require.Nil(t, item)
		require.Len(t, vs, 1)
		assert.Equal(t, validator.CodeCrossFieldInconsistency, vs[0].Code)
		assert.Equal(t, "sale_price_effective_start", vs[0].Path)
	})

	t.Run("ordered window yields zero violations", func(t *testing.T) {
		rec := minimalRecord()
		rec["sale_price_effective_start"] = "2025-05-01T00:00:00Z"
		rec["sale_price_effective_end"] = "2025-06-01T00:00:00Z"

		item, vs := feed.ValidateItem(rec)

		require.True(t, vs.IsEmpty())
		require.NotNil(t, item)
		assert.True(t, item.SalePriceEffectiveStart.Before(*item.SalePriceEffectiveEnd))
	})

	t.Run("equal start and end is valid", func(t *testing.T) {
		rec := minimalRecord()
		rec["sale_price_effective_start"] = "2025-05-01T00:00:00Z"
		rec["sale_price_effective_end"] = "2025-05-01T00:00:00Z"

		_, vs := feed.ValidateItem(rec)
		assert.True(t, vs.IsEmpty())
	})

	t.Run("check is skipped when one side failed to parse", func(t *testing.T) {
		rec := minimalRecord()
		rec["sale_price_effective_start"] = "2025-06-01T00:00:00Z"
		rec["sale_price_effective_end"] = "not-a-date"

		_, vs := feed.ValidateItem(rec)

		// Only the format violation; no cross-field noise on top.
		require.Len(t, vs, 1)
		assert.Equal(t, "sale_price_effective_end", vs[0].Path)
		assert.Equal(t, validator.CodeInvalidFormat, vs[0].Code)
	})
}

func TestValidateItemVariants(t *testing.T) {
	t.Run("violation in one element leaves the others untouched", func(t *testing.T) {
		rec := minimalRecord()
		rec["variants"] = []any{
			map[string]any{"variant_id": "v-0", "inventory_quantity": float64(3)},
			map[string]any{"variant_id": "v-1", "inventory_quantity": float64(-2)},
			map[string]any{"variant_id": "v-2", "inventory_quantity": float64(7)},
		}

		item, vs := feed.ValidateItem(rec)

		require.Nil(t, item)
		require.Len(t, vs, 1)
		assert.Equal(t, "variants[1].inventory_quantity", vs[0].Path)
		assert.Equal(t, validator.CodeOutOfRange, vs[0].Code)
	})

	t.Run("duplicate variant ids are not rejected", func(t *testing.T) {
		rec := minimalRecord()
		rec["variants"] = []any{
			map[string]any{"variant_id": "v-0"},
			map[string]any{"variant_id": "v-0"},
		}

		item, vs := feed.ValidateItem(rec)

		require.True(t, vs.IsEmpty())
		require.Len(t, item.Variants, 2)
	})

	t.Run("missing variant_id is reported per element", func(t *testing.T) {
		rec := minimalRecord()
		rec["variants"] = []any{
			map[string]any{"sku": "no-id"},
		}

		_, vs := feed.ValidateItem(rec)

		require.Len(t, vs, 1)
		assert.Equal(t, "variants[0].variant_id", vs[0].Path)
		assert.Equal(t, validator.CodeMissingRequiredField, vs[0].Code)
	})
}

func TestValidateItemOptionalFields(t *testing.T) {
	t.Run("absence of optional fields is never a violation", func(t *testing.T) {
		_, vs := feed.ValidateItem(minimalRecord())
		assert.True(t, vs.IsEmpty())
	})

	t.Run("present optional fields are validated", func(t *testing.T) {
		rec := minimalRecord()
		rec["image_url"] = "not a url"
		rec["condition"] = "mint"
		rec["average_rating"] = 5.5

		item, vs := feed.ValidateItem(rec)

		require.Nil(t, item)
		require.Len(t, vs, 3)
		assert.Equal(t, validator.CodeInvalidFormat, vs.At("image_url")[0].Code)
		assert.Equal(t, validator.CodeInvalidEnumValue, vs.At("condition")[0].Code)
		assert.Equal(t, validator.CodeOutOfRange, vs.At("average_rating")[0].Code)
	})

	t.Run("performance signals honor their ranges", func(t *testing.T) {
		rec := minimalRecord()
		rec["click_through_rate"] = 0.12
		rec["conversion_rate"] = 1.0
		rec["average_rating"] = 4.8
		rec["number_of_ratings"] = float64(250)
		rec["popularity_score"] = 3.3
		rec["return_rate"] = 2.5

		item, vs := feed.ValidateItem(rec)

		require.True(t, vs.IsEmpty(), "unexpected violations: %v", vs)
		assert.Equal(t, 0.12, *item.ClickThroughRate)
		assert.Equal(t, 250, *item.NumberOfRatings)
	})

	t.Run("return_rate above 100 is out of range", func(t *testing.T) {
		rec := minimalRecord()
		rec["return_rate"] = 101.0

		_, vs := feed.ValidateItem(rec)

		require.Len(t, vs, 1)
		assert.Equal(t, "return_rate", vs[0].Path)
		assert.Equal(t, validator.CodeOutOfRange, vs[0].Code)
	})

	t.Run("wrong-typed optional field is an invalid_format violation", func(t *testing.T) {
		rec := minimalRecord()
		rec["brand"] = 42.0

		_, vs := feed.ValidateItem(rec)

		require.Len(t, vs, 1)
		assert.Equal(t, "brand", vs[0].Path)
		assert.Equal(t, validator.CodeInvalidFormat, vs[0].Code)
	})
}

func TestValidateItemViolationOrdering(t *testing.T) {
	t.Run("violations follow schema declaration order", func(t *testing.T) {
		rec := minimalRecord()
		delete(rec, "title")
		rec["gender"] = "robot"
		rec["image_url"] = "bad"
		rec["return_rate"] = -1.0

		_, vs := feed.ValidateItem(rec)

		assert.Equal(t, []string{"title", "gender", "image_url", "return_rate"}, vs.Paths())
	})

	t.Run("array elements report in ascending index order", func(t *testing.T) {
		rec := minimalRecord()
		rec["additional_image_urls"] = []any{"bad-0", "https://img.example.com/1.jpg", "bad-2"}

		_, vs := feed.ValidateItem(rec)

		assert.Equal(t, []string{"additional_image_urls[0]", "additional_image_urls[2]"}, vs.Paths())
	})
}

func TestValidateItemGeo(t *testing.T) {
	t.Run("geo overrides validate per element", func(t *testing.T) {
		rec := minimalRecord()
		rec["geo_price"] = []any{
			map[string]any{"region": "CA", "price": map[string]any{"amount": "14.99", "currency": "CAD"}},
			map[string]any{"region": "UK", "price": map[string]any{"amount": "ten", "currency": "GBP"}},
		}
		rec["geo_availability"] = []any{
			map[string]any{"region": "DE", "availability": "sold_out"},
		}

		item, vs := feed.ValidateItem(rec)

		require.Nil(t, item)
		require.Len(t, vs, 2)
		assert.Equal(t, "geo_price[1].price.amount", vs[0].Path)
		assert.Equal(t, "geo_availability[0].availability", vs[1].Path)
		assert.Equal(t, validator.CodeInvalidEnumValue, vs[1].Code)
	})

	t.Run("duplicate regions are not rejected", func(t *testing.T) {
		rec := minimalRecord()
		rec["geo_availability"] = []any{
			map[string]any{"region": "DE", "availability": "in_stock"},
			map[string]any{"region": "DE", "availability": "out_of_stock"},
		}

		item, vs := feed.ValidateItem(rec)

		require.True(t, vs.IsEmpty())
		require.Len(t, item.GeoAvailabilities, 2)
	})
}

func TestValidateItemCustomAttributes(t *testing.T) {
	t.Run("duplicate names are allowed", func(t *testing.T) {
		rec := minimalRecord()
		rec["custom_attributes"] = []any{
			map[string]any{"name": "fit", "value": "slim"},
			map[string]any{"name": "fit", "value": "regular"},
		}

		item, vs := feed.ValidateItem(rec)

		require.True(t, vs.IsEmpty())
		require.Len(t, item.CustomAttributes, 2)
	})

	t.Run("missing members report at indexed paths", func(t *testing.T) {
		rec := minimalRecord()
		rec["custom_attributes"] = []any{
			map[string]any{"value": "nameless"},
		}

		_, vs := feed.ValidateItem(rec)

		require.Len(t, vs, 1)
		assert.Equal(t, "custom_attributes[0].name", vs[0].Path)
	})
}

func TestValidateItemFulfillment(t *testing.T) {
	t.Run("shipping dimensions accept the narrow unit set only", func(t *testing.T) {
		rec := minimalRecord()
		rec["length"] = map[string]any{"value": 2.0, "unit": "ft"}
		rec["shipping_dimensions"] = map[string]any{"value": 2.0, "unit": "ft"}

		_, vs := feed.ValidateItem(rec)

		require.Len(t, vs, 1)
		assert.Equal(t, "shipping_dimensions.unit", vs[0].Path)
		assert.Equal(t, validator.CodeInvalidEnumValue, vs[0].Code)
	})

	t.Run("ships_from_country requires an uppercase 2-letter code", func(t *testing.T) {
		rec := minimalRecord()
		rec["ships_from_country"] = "usa"

		_, vs := feed.ValidateItem(rec)

		require.Len(t, vs, 1)
		assert.Equal(t, "ships_from_country", vs[0].Path)
	})

	t.Run("non-positive weight value is out of range", func(t *testing.T) {
		rec := minimalRecord()
		rec["shipping_weight"] = map[string]any{"value": 0.0, "unit": "kg"}

		_, vs := feed.ValidateItem(rec)

		require.Len(t, vs, 1)
		assert.Equal(t, "shipping_weight.value", vs[0].Path)
		assert.Equal(t, validator.CodeOutOfRange, vs[0].Code)
	})
}

func TestValidateItemNeverBoth(t *testing.T) {
	t.Run("valid records return item and no violations", func(t *testing.T) {
		item, vs := feed.ValidateItem(minimalRecord())
		assert.NotNil(t, item)
		assert.True(t, vs.IsEmpty())
	})

	t.Run("invalid records return violations and no item", func(t *testing.T) {
		rec := minimalRecord()
		delete(rec, "link")
		item, vs := feed.ValidateItem(rec)
		assert.Nil(t, item)
		assert.False(t, vs.IsEmpty())
	})

	t.Run("empty record reports every required field", func(t *testing.T) {
		item, vs := feed.ValidateItem(map[string]any{})
		assert.Nil(t, item)
		require.Len(t, vs, 7)
		for _, v := range vs {
			assert.Equal(t, validator.CodeMissingRequiredField, v.Code)
		}
	})
}
