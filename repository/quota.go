package repository

import (
	"time"

	"github.com/leadflowbr/leadflow_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateUserQuota persists the monthly extraction counter and its reset stamp.
func UpdateUserQuota(userID primitive.ObjectID, count int, reset time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"extractedLeadsCount": count,
			"lastExtractionReset": reset,
			"updatedAt":           time.Now(),
		},
	}

	utils.LogDbOperation("update", UsersCollection, userID.Hex(), update)

	_, err := db.Collection(UsersCollection).UpdateByID(ctx, userID, update)
	return err
}

// UpgradeUserToPremium flips the subscription after a confirmed checkout.
func UpgradeUserToPremium(userID primitive.ObjectID) error {
	_, err := db.Collection(UsersCollection).UpdateByID(ctx, userID, bson.M{
		"$set": bson.M{
			"subscriptionType": "premium",
			"updatedAt":        time.Now(),
		},
	})
	return err
}
