package models

import "time"

// Service is a decoration service listed in the catalog.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	ServiceName string    `bson:"serviceName" json:"serviceName"`
	Category    string    `bson:"category" json:"category"`
	Cost        float64   `bson:"cost" json:"cost"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	TrackingID  string    `bson:"trackingId" json:"trackingId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// ServiceQuery carries the optional catalog listing filters.
type ServiceQuery struct {
	Search    string   // case-insensitive substring match on serviceName
	Category  string   // exact match
	MinBudget *float64 // inclusive lower cost bound
	MaxBudget *float64 // inclusive upper cost bound
}
