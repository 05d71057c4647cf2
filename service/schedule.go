package service

import (
	"time"

	"github.com/leadflowbr/leadflow_end/config"
	"github.com/leadflowbr/leadflow_end/models"
	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// ScheduleDailyTaskAt runs task every day at the given wall-clock time.
func ScheduleDailyTaskAt(hour, min, sec int, task func()) {
	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
			if now.After(next) {
				next = next.Add(24 * time.Hour)
			}
			time.Sleep(next.Sub(now))
			task()
		}
	}()
}

// ProcessExpiredTrials downgrades accounts whose trial window has passed and
// sends a best-effort notification mail.
func ProcessExpiredTrials(limits config.PlanLimits, mailer *Mailer) {
	now := time.Now()
	utils.Logger.Info().Time("at", now).Msg("running expired-trial check")

	ctx := repository.GetContext()
	usersCollection := repository.Collection(repository.UsersCollection)

	cutoff := now.AddDate(0, 0, -limits.TrialDays)

	cursor, err := usersCollection.Find(ctx, bson.M{
		"subscriptionType": models.SubscriptionTRIAL,
		"trialStartDate":   bson.M{"$lt": cutoff},
	})
	if err != nil {
		utils.Logger.Error().Err(err).Msg("expired-trial query failed")
		return
	}
	defer cursor.Close(ctx)

	var expired []models.User
	if err := cursor.All(ctx, &expired); err != nil {
		utils.Logger.Error().Err(err).Msg("expired-trial decode failed")
		return
	}

	for _, user := range expired {
		_, err := usersCollection.UpdateByID(ctx, user.ID, bson.M{
			"$set": bson.M{
				"subscriptionType": models.SubscriptionFREE,
				"updatedAt":        now,
			},
		})
		if err != nil {
			utils.Logger.Error().Err(err).Str("user", user.ID.Hex()).Msg("trial downgrade failed")
			continue
		}

		utils.Logger.Info().Str("user", user.ID.Hex()).Msg("trial expired, account moved to free plan")
		mailer.SendTrialEndedEmail(user.Email, user.Name)
	}
}
