package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleBuyer       Role = "buyer"
	RoleDeliveryMan Role = "delivery man"
	RoleAdmin       Role = "admin"
)

type WorkPermitStatus string

const (
	WorkPermitPending  WorkPermitStatus = "pending"
	WorkPermitAccepted WorkPermitStatus = "Accepted"
	WorkPermitRejected WorkPermitStatus = "Rejected"
)

type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Password           string             `bson:"password,omitempty" json:"-"`
	Role               Role               `bson:"role" json:"role"`
	Verified           bool               `bson:"verified" json:"verified"`
	WorkPermitStatus   WorkPermitStatus   `bson:"workPermitStatus,omitempty" json:"workPermitStatus,omitempty"`
	AvailabilityStatus bool               `bson:"availabilityStatus" json:"availabilityStatus"`
	Certification      string             `bson:"certification,omitempty" json:"certification,omitempty"`
	Image              string             `bson:"image,omitempty" json:"image,omitempty"`
	Contact            string             `bson:"contact,omitempty" json:"contact,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RoleFlags is the answer shape of the role resolver endpoints. A missing
// user resolves every flag to false.
type RoleFlags struct {
	IsAdmin       bool `json:"isAdmin"`
	IsDeliveryman bool `json:"isDeliveryman"`
	IsBuyer       bool `json:"isBuyer"`
}

func ResolveRoles(u *User) RoleFlags {
	if u == nil {
		return RoleFlags{}
	}
	return RoleFlags{
		IsAdmin:       u.Role == RoleAdmin,
		IsDeliveryman: u.Role == RoleDeliveryMan,
		IsBuyer:       u.Role == RoleBuyer,
	}
}

// ProfileUpdate carries the self-service profile fields. Nil pointers are
// left untouched by the store, mirroring the partial-overwrite update style.
type ProfileUpdate struct {
	Name    *string `json:"name,omitempty"`
	Image   *string `json:"image,omitempty"`
	Contact *string `json:"contact,omitempty"`
}
