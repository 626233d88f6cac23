package models

// Category groups services that compete for the same crew capacity.
type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Service represents a bookable catalog entry.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	CategoryID      string  `bson:"category_id" json:"categoryId"`
	DurationMinutes int     `bson:"duration_minutes" json:"durationMinutes"`
	BasePrice       float64 `bson:"base_price" json:"basePrice"`
	Active          bool    `bson:"active" json:"active"`
}

// ServiceDurationInfo is the slice of catalog data the scheduler needs:
// how long a service takes and which category's capacity it consumes.
type ServiceDurationInfo struct {
	ServiceID       string `bson:"service_id" json:"serviceId"`
	DurationMinutes int    `bson:"duration_minutes" json:"durationMinutes"`
	CategoryID      string `bson:"category_id" json:"categoryId"`
}
