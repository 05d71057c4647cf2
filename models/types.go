package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionType subscription plan enum
type SubscriptionType string

const (
	SubscriptionFREE    SubscriptionType = "free"
	SubscriptionTRIAL   SubscriptionType = "trial"
	SubscriptionPREMIUM SubscriptionType = "premium"
	SubscriptionADMIN   SubscriptionType = "admin"
)

// User account with the embedded plan/quota profile
type User struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email               string             `bson:"email" json:"email"`
	Password            string             `bson:"password" json:"-"`
	Name                string             `bson:"name" json:"name"`
	SubscriptionType    SubscriptionType   `bson:"subscriptionType" json:"subscriptionType"`
	TrialStartDate      time.Time          `bson:"trialStartDate,omitempty" json:"trialStartDate,omitempty"`
	ExtractedLeadsCount int                `bson:"extractedLeadsCount" json:"extractedLeadsCount"`
	LastExtractionReset time.Time          `bson:"lastExtractionReset" json:"lastExtractionReset"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Profile is the read-only plan/quota view consumed by the gating logic.
type Profile struct {
	SubscriptionType    SubscriptionType `bson:"subscriptionType" json:"subscriptionType"`
	TrialStartDate      time.Time        `bson:"trialStartDate,omitempty" json:"trialStartDate,omitempty"`
	ExtractedLeadsCount int              `bson:"extractedLeadsCount" json:"extractedLeadsCount"`
	LastExtractionReset time.Time        `bson:"lastExtractionReset" json:"lastExtractionReset"`
}

// Profile returns the quota view of the user.
func (u *User) Profile() Profile {
	return Profile{
		SubscriptionType:    u.SubscriptionType,
		TrialStartDate:      u.TrialStartDate,
		ExtractedLeadsCount: u.ExtractedLeadsCount,
		LastExtractionReset: u.LastExtractionReset,
	}
}

// RegisterRequest register input
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest login input
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
