package models

type Location struct {
	Street    string   `json:"street" bson:"street"`
	City      string   `json:"city" bson:"city"`
	State     string   `json:"state" bson:"state"`
	ZipCode   string   `json:"zip_code" bson:"zip_code"`
	Country   string   `json:"country" bson:"country"`
	Latitude  *float64 `json:"latitude" bson:"latitude"`
	Longitude *float64 `json:"longitude" bson:"longitude"`
}

type PriceHistoryEntry struct {
	Price     float64 `json:"price" bson:"price"`
	ChangedAt UTCTime `json:"changed_at" bson:"changed_at"`
	Reason    *string `json:"reason" bson:"reason"`
}

type Property struct {
	PropertyID     string              `json:"property_id" bson:"property_id"`
	Title          string              `json:"title" bson:"title"`
	Description    string              `json:"description" bson:"description"`
	PropertyType   PropertyType        `json:"property_type" bson:"property_type"`
	CurrentPrice   float64             `json:"current_price" bson:"current_price"`
	PriceHistory   []PriceHistoryEntry `json:"price_history" bson:"price_history"`
	Location       Location            `json:"location" bson:"location"`
	Bedrooms       *int                `json:"bedrooms" bson:"bedrooms"`
	Bathrooms      *float64            `json:"bathrooms" bson:"bathrooms"`
	AreaSqft       *float64            `json:"area_sqft" bson:"area_sqft"`
	YearBuilt      *int                `json:"year_built" bson:"year_built"`
	Amenities      []string            `json:"amenities" bson:"amenities"`
	Images         []string            `json:"images" bson:"images"`
	Documents      []string            `json:"documents" bson:"documents"`
	VirtualTourURL *string             `json:"virtual_tour_url" bson:"virtual_tour_url"`
	CreatedAt      UTCTime             `json:"created_at" bson:"created_at"`
	UpdatedAt      UTCTime             `json:"updated_at" bson:"updated_at"`
}

type PropertyCreate struct {
	PropertyID     string   `json:"property_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	PropertyType   string   `json:"property_type"`
	CurrentPrice   float64  `json:"current_price"`
	Location       Location `json:"location"`
	Bedrooms       *int     `json:"bedrooms"`
	Bathrooms      *float64 `json:"bathrooms"`
	AreaSqft       *float64 `json:"area_sqft"`
	YearBuilt      *int     `json:"year_built"`
	Amenities      []string `json:"amenities"`
	Images         []string `json:"images"`
	Documents      []string `json:"documents"`
	VirtualTourURL *string  `json:"virtual_tour_url"`
}

type PropertyUpdate struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	CurrentPrice   *float64  `json:"current_price"`
	Bedrooms       *int      `json:"bedrooms"`
	Bathrooms      *float64  `json:"bathrooms"`
	AreaSqft       *float64  `json:"area_sqft"`
	Amenities      *[]string `json:"amenities"`
	Images         *[]string `json:"images"`
	Documents      *[]string `json:"documents"`
	VirtualTourURL *string   `json:"virtual_tour_url"`
}
