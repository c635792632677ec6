package feed

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/feedgate/pkg/validator"
)

// ValidateItem inspects one raw catalog record against the full feed
// schema and returns either the normalized item with no violations or
// nil with the complete ordered violation list - never both, never
// neither.
//
// Validation is fail-complete: every field is checked regardless of
// earlier failures, so a batch reviewer sees every defect in one pass.
// Violations are ordered by schema declaration order, then by ascending
// element index within array fields, with cross-field checks last.
func ValidateItem(raw map[string]any) (*Item, validator.Violations) {
	p := &itemParser{raw: raw}

	p.requiredCore()
	p.identification()
	p.physical()
	p.media()
	p.pricing()
	p.availabilityWindow()
	p.variantsAndGrouping()
	p.fulfillment()
	p.merchant()
	p.returns()
	p.performance()
	p.compliance()
	p.classification()
	p.customAttributes()
	p.related()
	p.reviews()
	p.geo()
	p.crossField()

	if !p.vs.IsEmpty() {
		return nil, p.vs
	}

	p.item.normalize()
	return &p.item, nil
}

// itemParser walks the declared field set in order, dispatching each
// field to its leaf or composite validator and collecting violations.
// It is built fresh per call; the engine holds no state across records.
type itemParser struct {
	raw  map[string]any
	item Item
	vs   validator.Violations
}

func (p *itemParser) requiredCore() {
	p.item.ProductID = p.requireString("product_id", 0)
	p.item.Title = p.requireString("title", 150)
	p.item.Description = p.requireString("description", 5000)
	p.item.Link = p.requireURL("link")
	p.item.Price = p.requireMoney("price")
	p.item.Availability = Availability(p.requireEnum("availability", availabilityValues))
	p.item.InventoryQuantity = p.requireNonNegInt("inventory_quantity")
}

func (p *itemParser) identification() {
	p.item.Brand = p.optText("brand")
	p.item.MPN = p.optText("mpn")
	p.item.GTIN = p.optText("gtin")
	p.item.SKU = p.optText("sku")
	p.item.Condition = Condition(p.optEnum("condition", conditionValues))
	p.item.ProductCategory = p.optText("product_category")
}

func (p *itemParser) physical() {
	p.item.Material = p.optText("material")
	p.item.Pattern = p.optText("pattern")
	p.item.Color = p.optText("color")
	p.item.Size = p.optText("size")
	p.item.AgeGroup = AgeGroup(p.optEnum("age_group", ageGroupValues))
	p.item.Gender = Gender(p.optEnum("gender", genderValues))
	p.item.Dimensions = p.optText("dimensions")
	p.item.Length = p.optDimension("length", dimensionUnits)
	p.item.Width = p.optDimension("width", dimensionUnits)
	p.item.Height = p.optDimension("height", dimensionUnits)
	p.item.Weight = p.optWeight("weight")
}

func (p *itemParser) media() {
	p.item.ImageURL = p.optURL("image_url")
	p.item.AdditionalImageURLs = p.optURLArray("additional_image_urls")
	p.item.VideoURLs = p.optURLArray("video_urls")
	p.item.Model3DURL = p.optURL("model_3d_url")
}

func (p *itemParser) pricing() {
	p.item.CompareAtPrice = p.optMoney("compare_at_price")
	p.item.SalePrice = p.optMoney("sale_price")
	p.item.SalePriceEffectiveStart = p.optDateTime("sale_price_effective_start")
	p.item.SalePriceEffectiveEnd = p.optDateTime("sale_price_effective_end")
	p.item.ApplicableTaxesFees = p.optMoney("applicable_taxes_fees")
	p.item.UnitPricingMeasure = p.optText("unit_pricing_measure")
	p.item.UnitPricingBaseMeasure = p.optText("unit_pricing_base_measure")
	p.item.PricingTrend = p.optText("pricing_trend")
}

func (p *itemParser) availabilityWindow() {
	p.item.AvailabilityDate = p.optDateTime("availability_date")
	p.item.ExpirationDate = p.optDateTime("expiration_date")
	p.item.PickupMethod = PickupMethod(p.optEnum("pickup_method", pickupMethodValues))
	p.item.PickupSLA = p.optText("pickup_sla")
}

func (p *itemParser) variantsAndGrouping() {
	if raw, present := p.raw["variants"]; present {
		if arr, ok := rawArray(raw); !ok {
			p.invalid("variants", "must be an array")
		} else {
			variants := make([]Variant, 0, len(arr))
			for i, el := range arr {
				vr, vvs := parseVariant(el)
				p.vs.MergeAt(fmt.Sprintf("variants[%d]", i), vvs)
				variants = append(variants, vr)
			}
			p.item.Variants = variants
		}
	}
	p.item.ItemGroupID = p.optText("item_group_id")
	p.item.ItemGroupTitle = p.optText("item_group_title")
}

func (p *itemParser) fulfillment() {
	p.item.ShippingWeight = p.optWeight("shipping_weight")
	p.item.ShippingDimensions = p.optDimension("shipping_dimensions", shippingDimensionUnits)
	p.item.ShippingLabel = p.optText("shipping_label")
	if s, ok := p.optString("ships_from_country"); ok {
		p.vs.Merge(validator.Apply(validator.ValidCountryCode("ships_from_country", s)))
		p.item.ShipsFromCountry = s
	}
	p.item.DeliveryEstimate = p.optText("delivery_estimate")
	p.item.ShippingCost = p.optMoney("shipping_cost")
}

func (p *itemParser) merchant() {
	p.item.SellerName = p.optText("seller_name")
	p.item.SellerURL = p.optURL("seller_url")
	p.item.SellerPrivacyPolicy = p.optURL("seller_privacy_policy")
	p.item.SellerTOS = p.optURL("seller_tos")
}

func (p *itemParser) returns() {
	p.item.ReturnPolicy = p.optText("return_policy")
	p.item.ReturnWindow = p.optNonNegInt("return_window")
}

func (p *itemParser) performance() {
	p.item.ClickThroughRate = p.optRange("click_through_rate", 0, 1)
	p.item.ConversionRate = p.optRange("conversion_rate", 0, 1)
	p.item.AverageRating = p.optRange("average_rating", 0, 5)
	p.item.NumberOfRatings = p.optNonNegInt("number_of_ratings")
	p.item.NumberOfReviews = p.optNonNegInt("number_of_reviews")
	p.item.ProductReviewRating = p.optRange("product_review_rating", 0, 5)
	p.item.PopularityScore = p.optRange("popularity_score", 0, 5)
	p.item.ReturnRate = p.optRange("return_rate", 0, 100)
}

func (p *itemParser) compliance() {
	p.item.Warning = p.optText("warning")
	p.item.WarningURL = p.optURL("warning_url")
	p.item.AgeRestriction = p.optNonNegInt("age_restriction")
}

func (p *itemParser) classification() {
	p.item.ProductType = p.optText("product_type")
	p.item.Tags = p.optStringArray("tags")
}

func (p *itemParser) customAttributes() {
	raw, present := p.raw["custom_attributes"]
	if !present {
		return
	}
	arr, ok := rawArray(raw)
	if !ok {
		p.invalid("custom_attributes", "must be an array")
		return
	}
	attrs := make([]CustomAttribute, 0, len(arr))
	for i, el := range arr {
		ca, cvs := parseCustomAttribute(el)
		p.vs.MergeAt(fmt.Sprintf("custom_attributes[%d]", i), cvs)
		attrs = append(attrs, ca)
	}
	p.item.CustomAttributes = attrs
}

func (p *itemParser) related() {
	p.item.RelatedProductIDs = p.optStringArray("related_product_ids")
	p.item.RelationshipType = RelationshipType(p.optEnum("relationship_type", relationshipTypeValues))
}

func (p *itemParser) reviews() {
	p.item.RawReviewData = p.optText("raw_review_data")
	p.item.QAndA = p.optText("q_and_a")
}

func (p *itemParser) geo() {
	p.item.IncludedDestinations = p.optStringArray("included_destinations")
	p.item.ExcludedDestinations = p.optStringArray("excluded_destinations")

	if raw, present := p.raw["geo_price"]; present {
		if arr, ok := rawArray(raw); !ok {
			p.invalid("geo_price", "must be an array")
		} else {
			prices := make([]GeoPrice, 0, len(arr))
			for i, el := range arr {
				gp, gvs := parseGeoPrice(el)
				p.vs.MergeAt(fmt.Sprintf("geo_price[%d]", i), gvs)
				prices = append(prices, gp)
			}
			p.item.GeoPrices = prices
		}
	}

	if raw, present := p.raw["geo_availability"]; present {
		if arr, ok := rawArray(raw); !ok {
			p.invalid("geo_availability", "must be an array")
		} else {
			avails := make([]GeoAvailability, 0, len(arr))
			for i, el := range arr {
				ga, gvs := parseGeoAvailability(el)
				p.vs.MergeAt(fmt.Sprintf("geo_availability[%d]", i), gvs)
				avails = append(avails, ga)
			}
			p.item.GeoAvailabilities = avails
		}
	}
}

// crossField runs the fixed cross-field checks against whatever values
// parsed successfully. A check referencing an unparsed field is
// skipped, not treated as passing. The price vs compare_at_price
// ordering is deliberately not enforced; the schema treats it as
// advisory.
func (p *itemParser) crossField() {
	start, end := p.item.SalePriceEffectiveStart, p.item.SalePriceEffectiveEnd
	if start != nil && end != nil && start.After(*end) {
		p.vs.Add(validator.Violation{
			Path:    "sale_price_effective_start",
			Code:    validator.CodeCrossFieldInconsistency,
			Message: "sale window start must not be after sale_price_effective_end",
		})
	}
}

// Field-level helpers. Each reports its own violations and returns the
// zero value when the field is absent or invalid; the final verdict
// depends only on the collected violations.

func (p *itemParser) invalid(path, msg string) {
	p.vs.Add(validator.Violation{Path: path, Code: validator.CodeInvalidFormat, Message: msg})
}

func (p *itemParser) optString(key string) (string, bool) {
	raw, present := p.raw[key]
	if !present {
		return "", false
	}
	s, ok := rawString(raw)
	if !ok {
		p.invalid(key, "must be a string")
		return "", false
	}
	return s, true
}

// optText is an optional unconstrained string field.
func (p *itemParser) optText(key string) string {
	s, _ := p.optString(key)
	return s
}

func (p *itemParser) requireString(key string, maxLen int) string {
	raw, present := p.raw[key]
	if !present {
		p.vs.Add(validator.Missing(key))
		return ""
	}
	s, ok := rawString(raw)
	if !ok {
		p.invalid(key, "must be a string")
		return ""
	}
	rules := []validator.Rule{validator.RequiredString(key, s)}
	if maxLen > 0 {
		rules = append(rules, validator.MaxLenString(key, s, maxLen))
	}
	p.vs.Merge(validator.Apply(rules...))
	return s
}

func (p *itemParser) requireURL(key string) string {
	raw, present := p.raw[key]
	if !present {
		p.vs.Add(validator.Missing(key))
		return ""
	}
	s, ok := rawString(raw)
	if !ok {
		p.invalid(key, "must be a string")
		return ""
	}
	p.vs.Merge(validator.Apply(validator.ValidURL(key, s)))
	return s
}

func (p *itemParser) optURL(key string) string {
	s, ok := p.optString(key)
	if !ok {
		return ""
	}
	if uvs := validator.Apply(validator.ValidURL(key, s)); !uvs.IsEmpty() {
		p.vs.Merge(uvs)
		return ""
	}
	return s
}

func (p *itemParser) requireEnum(key string, allowed []string) string {
	raw, present := p.raw[key]
	if !present {
		p.vs.Add(validator.Missing(key))
		return ""
	}
	s, ok := rawString(raw)
	if !ok {
		p.invalid(key, "must be a string")
		return ""
	}
	p.vs.Merge(validator.Apply(validator.InListString(key, s, allowed)))
	return s
}

func (p *itemParser) optEnum(key string, allowed []string) string {
	s, ok := p.optString(key)
	if !ok {
		return ""
	}
	if evs := validator.Apply(validator.InListString(key, s, allowed)); !evs.IsEmpty() {
		p.vs.Merge(evs)
		return ""
	}
	return s
}

func (p *itemParser) optDateTime(key string) *time.Time {
	s, ok := p.optString(key)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		p.vs.Merge(validator.Apply(validator.ValidDateTime(key, s)))
		return nil
	}
	return &t
}

func (p *itemParser) requireNonNegInt(key string) int {
	raw, present := p.raw[key]
	if !present {
		p.vs.Add(validator.Missing(key))
		return 0
	}
	n, ok := rawNumber(raw)
	if !ok {
		p.invalid(key, "must be a number")
		return 0
	}
	p.vs.Merge(validator.Apply(
		validator.IntegerValue(key, n),
		validator.NonNegativeNum(key, n),
		validator.FitsInInt(key, n),
	))
	return int(n)
}

func (p *itemParser) optNonNegInt(key string) *int {
	raw, present := p.raw[key]
	if !present {
		return nil
	}
	n, ok := rawNumber(raw)
	if !ok {
		p.invalid(key, "must be a number")
		return nil
	}
	if nvs := validator.Apply(
		validator.IntegerValue(key, n),
		validator.NonNegativeNum(key, n),
		validator.FitsInInt(key, n),
	); !nvs.IsEmpty() {
		p.vs.Merge(nvs)
		return nil
	}
	q := int(n)
	return &q
}

func (p *itemParser) optRange(key string, min, max float64) *float64 {
	raw, present := p.raw[key]
	if !present {
		return nil
	}
	n, ok := rawNumber(raw)
	if !ok {
		p.invalid(key, "must be a number")
		return nil
	}
	if rvs := validator.Apply(validator.RangeNum(key, n, min, max)); !rvs.IsEmpty() {
		p.vs.Merge(rvs)
		return nil
	}
	return &n
}

func (p *itemParser) requireMoney(key string) Money {
	raw, present := p.raw[key]
	if !present {
		p.vs.Add(validator.Missing(key))
		return Money{}
	}
	m, mvs := parseMoney(raw)
	p.vs.MergeAt(key, mvs)
	return m
}

func (p *itemParser) optMoney(key string) *Money {
	raw, present := p.raw[key]
	if !present {
		return nil
	}
	m, mvs := parseMoney(raw)
	if !mvs.IsEmpty() {
		p.vs.MergeAt(key, mvs)
		return nil
	}
	return &m
}

func (p *itemParser) optDimension(key string, units []string) *Dimension {
	raw, present := p.raw[key]
	if !present {
		return nil
	}
	d, dvs := parseDimension(raw, units)
	if !dvs.IsEmpty() {
		p.vs.MergeAt(key, dvs)
		return nil
	}
	return &d
}

func (p *itemParser) optWeight(key string) *Weight {
	raw, present := p.raw[key]
	if !present {
		return nil
	}
	w, wvs := parseWeight(raw)
	if !wvs.IsEmpty() {
		p.vs.MergeAt(key, wvs)
		return nil
	}
	return &w
}

func (p *itemParser) optStringArray(key string) []string {
	raw, present := p.raw[key]
	if !present {
		return nil
	}
	arr, ok := rawArray(raw)
	if !ok {
		p.invalid(key, "must be an array")
		return nil
	}
	out := make([]string, 0, len(arr))
	for i, el := range arr {
		s, ok := rawString(el)
		if !ok {
			p.invalid(fmt.Sprintf("%s[%d]", key, i), "must be a string")
			continue
		}
		out = append(out, s)
	}
	return out
}

func (p *itemParser) optURLArray(key string) []string {
	raw, present := p.raw[key]
	if !present {
		return nil
	}
	arr, ok := rawArray(raw)
	if !ok {
		p.invalid(key, "must be an array")
		return nil
	}
	out := make([]string, 0, len(arr))
	for i, el := range arr {
		path := fmt.Sprintf("%s[%d]", key, i)
		s, ok := rawString(el)
		if !ok {
			p.invalid(path, "must be a string")
			continue
		}
		if uvs := validator.Apply(validator.ValidURL(path, s)); !uvs.IsEmpty() {
			p.vs.Merge(uvs)
			continue
		}
		out = append(out, s)
	}
	return out
}
