package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EquipmentStatus tracks the operational state of a piece of equipment.
type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentInUse       EquipmentStatus = "in_use"
	EquipmentOutOfOrder  EquipmentStatus = "out_of_order"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentRetired     EquipmentStatus = "retired"
)

// Equipment represents a piece of gym equipment.
type Equipment struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	Description         string             `bson:"description,omitempty" json:"description,omitempty"`
	Category            string             `bson:"category,omitempty" json:"category,omitempty"` // e.g. "Cardio", "Free Weights"
	Manufacturer        string             `bson:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	SerialNumber        string             `bson:"serialNumber,omitempty" json:"serialNumber,omitempty"`
	PurchaseDate        time.Time          `bson:"purchaseDate,omitempty" json:"purchaseDate,omitempty"`
	PurchasePrice       float64            `bson:"purchasePrice,omitempty" json:"purchasePrice,omitempty"`
	Status              EquipmentStatus    `bson:"status" json:"status"`
	Location            string             `bson:"location,omitempty" json:"location,omitempty"`
	LastMaintenanceDate *time.Time         `bson:"lastMaintenanceDate,omitempty" json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate *time.Time         `bson:"nextMaintenanceDate,omitempty" json:"nextMaintenanceDate,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
	DeletedAt           *time.Time         `bson:"deletedAt,omitempty" json:"-"`
}
