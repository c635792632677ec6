package feed

// Availability is the stock status of an item or variant.
type Availability string

const (
	AvailabilityInStock      Availability = "in_stock"
	AvailabilityOutOfStock   Availability = "out_of_stock"
	AvailabilityPreorder     Availability = "preorder"
	AvailabilityBackorder    Availability = "backorder"
	AvailabilityDiscontinued Availability = "discontinued"
)

// Condition describes the physical state of an item.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionRefurbished Condition = "refurbished"
	ConditionUsed        Condition = "used"
)

// AgeGroup is the target age demographic.
type AgeGroup string

const (
	AgeGroupNewborn AgeGroup = "newborn"
	AgeGroupInfant  AgeGroup = "infant"
	AgeGroupToddler AgeGroup = "toddler"
	AgeGroupKids    AgeGroup = "kids"
	AgeGroupAdult   AgeGroup = "adult"
)

// Gender is the target gender demographic.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

// PickupMethod describes how a buyer collects an in-store order.
type PickupMethod string

const (
	PickupBuyOnlinePickupInStore PickupMethod = "buy_online_pickup_in_store"
	PickupCurbside               PickupMethod = "curbside"
	PickupInStore                PickupMethod = "in_store"
)

// RelationshipType links an item to related products.
type RelationshipType string

const (
	RelationshipOftenBoughtWith RelationshipType = "often_bought_with"
	RelationshipSimilarTo       RelationshipType = "similar_to"
	RelationshipAccessoriesFor  RelationshipType = "accessories_for"
	RelationshipAlternativeTo   RelationshipType = "alternative_to"
)

// Allowed enum literal sets, in the schema's declared order.
var (
	availabilityValues = []string{
		string(AvailabilityInStock),
		string(AvailabilityOutOfStock),
		string(AvailabilityPreorder),
		string(AvailabilityBackorder),
		string(AvailabilityDiscontinued),
	}

	conditionValues = []string{
		string(ConditionNew),
		string(ConditionRefurbished),
		string(ConditionUsed),
	}

	ageGroupValues = []string{
		string(AgeGroupNewborn),
		string(AgeGroupInfant),
		string(AgeGroupToddler),
		string(AgeGroupKids),
		string(AgeGroupAdult),
	}

	genderValues = []string{
		string(GenderMale),
		string(GenderFemale),
		string(GenderUnisex),
	}

	pickupMethodValues = []string{
		string(PickupBuyOnlinePickupInStore),
		string(PickupCurbside),
		string(PickupInStore),
	}

	relationshipTypeValues = []string{
		string(RelationshipOftenBoughtWith),
		string(RelationshipSimilarTo),
		string(RelationshipAccessoriesFor),
		string(RelationshipAlternativeTo),
	}

	// Unit enums for unit-carrying measures. Shipping dimensions accept
	// a narrower unit set than general dimensions.
	dimensionUnits         = []string{"in", "cm", "m", "ft"}
	shippingDimensionUnits = []string{"in", "cm"}
	weightUnits            = []string{"lb", "oz", "kg", "g"}
)
