package models

import "time"

// Delivery statuses a booking moves through. A booking starts out
// "assigned" (waiting for a decorator), becomes "materials-prepared" once a
// decorator accepts, enters "planning-phase" when the payment settles, and
// then runs through execution to a terminal state.
const (
	StatusAssigned          = "assigned"
	StatusMaterialsPrepared = "materials-prepared"
	StatusPlanningPhase     = "planning-phase"
	StatusInProgress        = "in-progress"
	StatusCompleted         = "completed"
	StatusCancelled         = "cancelled"
)

// PaymentStatusPaid marks a booking whose checkout settled successfully.
const PaymentStatusPaid = "paid"

// Booking is a customer's request for a decoration service.
type Booking struct {
	ID              string     `bson:"id" json:"id"`
	UserEmail       string     `bson:"userEmail" json:"userEmail"`
	UserName        string     `bson:"userName,omitempty" json:"userName,omitempty"`
	ServiceID       string     `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	ServiceName     string     `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Cost            float64    `bson:"cost,omitempty" json:"cost,omitempty"`
	Location        string     `bson:"location,omitempty" json:"location,omitempty"`
	TrackingID      string     `bson:"trackingId" json:"trackingId"`
	DeliveryStatus  string     `bson:"deliveryStatus" json:"deliveryStatus"`
	PaymentStatus   string     `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	DecoratorName   string     `bson:"decoratorName,omitempty" json:"decoratorName,omitempty"`
	DecoratorEmail  string     `bson:"decoratorEmail,omitempty" json:"decoratorEmail,omitempty"`
	DecoratorStatus string     `bson:"decoratorStatus,omitempty" json:"decoratorStatus,omitempty"`
	AssignedAt      *time.Time `bson:"assignedAt,omitempty" json:"assignedAt,omitempty"`
	Ratings         string     `bson:"ratings,omitempty" json:"ratings,omitempty"`
	Date            time.Time  `bson:"date" json:"date"`
}

// BookingQuery carries the optional booking listing filters.
type BookingQuery struct {
	UserEmail      string
	DecoratorEmail string
	DeliveryStatus string
}

// DecoratorAssignment is the payload attached to a booking when a
// decorator takes it on.
type DecoratorAssignment struct {
	DecoratorName   string `json:"decoratorName"`
	DecoratorEmail  string `json:"decoratorEmail"`
	DecoratorStatus string `json:"decoratorStatus"`
}
