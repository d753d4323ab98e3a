package models

import "time"

// Roles recognized by the platform. RoleDecorator is the privileged
// provider role and is the only role that carries an approval status.
const (
	RoleUser      = "user"
	RoleDecorator = "decorator"
	RoleAdmin     = "admin"
	RoleRider     = "rider"
)

// DecoratorStatusPending is the default approval status stamped on a
// freshly registered decorator account.
const DecoratorStatusPending = "pending"

// User represents a platform account.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Email     string    `bson:"email" json:"email"`
	PhotoURL  string    `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      string    `bson:"role" json:"role"`
	Status    string    `bson:"status,omitempty" json:"status,omitempty"` // decorator accounts only
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
