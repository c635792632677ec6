package feed

import "time"

// Money is a decimal-string amount with a 3-letter uppercase currency
// code. The amount stays a string end to end; parsing it into a float
// would silently lose the precision the format rule protects.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Dimension is a positive length measure with a unit.
type Dimension struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Weight is a positive mass measure with a unit.
type Weight struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Variant is one sellable variation of an item. It is owned by the
// parent item's variant list; variant_id identity is not required to
// be unique within a record (the schema does not enforce it).
type Variant struct {
	VariantID         string            `json:"variant_id"`
	Attributes        map[string]string `json:"attributes,omitempty"`
	Price             *Money            `json:"price,omitempty"`
	Availability      Availability      `json:"availability,omitempty"`
	InventoryQuantity *int              `json:"inventory_quantity,omitempty"`
	SKU               string            `json:"sku,omitempty"`
	Barcode           string            `json:"barcode,omitempty"`
	ImageURL          string            `json:"image_url,omitempty"`
}

// CustomAttribute is a free-form name/value pair. Duplicate names are
// allowed within a record.
type CustomAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// GeoPrice overrides the item price for a region. Duplicate regions
// within the list are not rejected by the schema.
type GeoPrice struct {
	Region string `json:"region"`
	Price  Money  `json:"price"`
}

// GeoAvailability overrides the item availability for a region.
type GeoAvailability struct {
	Region       string       `json:"region"`
	Availability Availability `json:"availability"`
}

// Item is the normalized form of one merchant catalog record. Only
// records with zero violations ever materialize as an Item. Optional
// scalar numbers and timestamps are pointers so absence survives the
// round trip; optional strings use the empty string for absence.
type Item struct {
	// Required core.
	ProductID         string       `json:"product_id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Link              string       `json:"link"`
	Price             Money        `json:"price"`
	Availability      Availability `json:"availability"`
	InventoryQuantity int          `json:"inventory_quantity"`

	// Identification.
	Brand           string    `json:"brand,omitempty"`
	MPN             string    `json:"mpn,omitempty"`
	GTIN            string    `json:"gtin,omitempty"`
	SKU             string    `json:"sku,omitempty"`
	Condition       Condition `json:"condition,omitempty"`
	ProductCategory string    `json:"product_category,omitempty"`

	// Physical properties.
	Material   string     `json:"material,omitempty"`
	Pattern    string     `json:"pattern,omitempty"`
	Color      string     `json:"color,omitempty"`
	Size       string     `json:"size,omitempty"`
	AgeGroup   AgeGroup   `json:"age_group,omitempty"`
	Gender     Gender     `json:"gender,omitempty"`
	Dimensions string     `json:"dimensions,omitempty"`
	Length     *Dimension `json:"length,omitempty"`
	Width      *Dimension `json:"width,omitempty"`
	Height     *Dimension `json:"height,omitempty"`
	Weight     *Weight    `json:"weight,omitempty"`

	// Media.
	ImageURL            string   `json:"image_url,omitempty"`
	AdditionalImageURLs []string `json:"additional_image_urls,omitempty"`
	VideoURLs           []string `json:"video_urls,omitempty"`
	Model3DURL          string   `json:"model_3d_url,omitempty"`

	// Pricing and promotions.
	CompareAtPrice          *Money     `json:"compare_at_price,omitempty"`
	SalePrice               *Money     `json:"sale_price,omitempty"`
	SalePriceEffectiveStart *time.Time `json:"sale_price_effective_start,omitempty"`
	SalePriceEffectiveEnd   *time.Time `json:"sale_price_effective_end,omitempty"`
	ApplicableTaxesFees     *Money     `json:"applicable_taxes_fees,omitempty"`
	UnitPricingMeasure      string     `json:"unit_pricing_measure,omitempty"`
	UnitPricingBaseMeasure  string     `json:"unit_pricing_base_measure,omitempty"`
	PricingTrend            string     `json:"pricing_trend,omitempty"`

	// Availability window.
	AvailabilityDate *time.Time   `json:"availability_date,omitempty"`
	ExpirationDate   *time.Time   `json:"expiration_date,omitempty"`
	PickupMethod     PickupMethod `json:"pickup_method,omitempty"`
	PickupSLA        string       `json:"pickup_sla,omitempty"`

	// Variants and grouping.
	Variants       []Variant `json:"variants,omitempty"`
	ItemGroupID    string    `json:"item_group_id,omitempty"`
	ItemGroupTitle string    `json:"item_group_title,omitempty"`

	// Fulfillment.
	ShippingWeight     *Weight    `json:"shipping_weight,omitempty"`
	ShippingDimensions *Dimension `json:"shipping_dimensions,omitempty"`
	ShippingLabel      string     `json:"shipping_label,omitempty"`
	ShipsFromCountry   string     `json:"ships_from_country,omitempty"`
	DeliveryEstimate   string     `json:"delivery_estimate,omitempty"`
	ShippingCost       *Money     `json:"shipping_cost,omitempty"`

	// Merchant info.
	SellerName          string `json:"seller_name,omitempty"`
	SellerURL           string `json:"seller_url,omitempty"`
	SellerPrivacyPolicy string `json:"seller_privacy_policy,omitempty"`
	SellerTOS           string `json:"seller_tos,omitempty"`

	// Returns.
	ReturnPolicy string `json:"return_policy,omitempty"`
	ReturnWindow *int   `json:"return_window,omitempty"`

	// Performance signals.
	ClickThroughRate    *float64 `json:"click_through_rate,omitempty"`
	ConversionRate      *float64 `json:"conversion_rate,omitempty"`
	AverageRating       *float64 `json:"average_rating,omitempty"`
	NumberOfRatings     *int     `json:"number_of_ratings,omitempty"`
	NumberOfReviews     *int     `json:"number_of_reviews,omitempty"`
	ProductReviewRating *float64 `json:"product_review_rating,omitempty"`
	PopularityScore     *float64 `json:"popularity_score,omitempty"`
	ReturnRate          *float64 `json:"return_rate,omitempty"`

	// Compliance and safety.
	Warning        string `json:"warning,omitempty"`
	WarningURL     string `json:"warning_url,omitempty"`
	AgeRestriction *int   `json:"age_restriction,omitempty"`

	// Classification.
	ProductType string   `json:"product_type,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// Custom attributes.
	CustomAttributes []CustomAttribute `json:"custom_attributes,omitempty"`

	// Related products.
	RelatedProductIDs []string         `json:"related_product_ids,omitempty"`
	RelationshipType  RelationshipType `json:"relationship_type,omitempty"`

	// Reviews and Q&A.
	RawReviewData string `json:"raw_review_data,omitempty"`
	QAndA         string `json:"q_and_a,omitempty"`

	// Geo-tagging.
	IncludedDestinations []string          `json:"included_destinations,omitempty"`
	ExcludedDestinations []string          `json:"excluded_destinations,omitempty"`
	GeoPrices            []GeoPrice        `json:"geo_price,omitempty"`
	GeoAvailabilities    []GeoAvailability `json:"geo_availability,omitempty"`
}
