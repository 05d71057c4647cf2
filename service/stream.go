package service

import (
	"context"

	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// changeEvent the slice of a change-stream event the feed needs.
type changeEvent struct {
	OperationType string `bson:"operationType"`
	FullDocument  struct {
		UserID string `bson:"userId"`
	} `bson:"fullDocument"`
}

// WatchLeads opens a change stream on the leads collection and signals once
// per change relevant to the owner. No payload is carried: subscribers
// re-fetch the collection on every signal, which keeps sessions eventually
// consistent without diffing.
func WatchLeads(ctx context.Context, userID string) (<-chan struct{}, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": []string{"insert", "update", "replace", "delete"}},
		}}},
	}

	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := repository.Collection(repository.LeadsCollection).Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, err
	}

	events := make(chan struct{}, 1)

	go func() {
		defer close(events)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var evt changeEvent
			if err := stream.Decode(&evt); err != nil {
				utils.Logger.Warn().Err(err).Msg("change event decode failed")
				continue
			}

			// deletes carry no document, so they signal every watcher;
			// the re-fetch is owner-scoped either way
			if evt.FullDocument.UserID != "" && evt.FullDocument.UserID != userID {
				continue
			}

			select {
			case events <- struct{}{}:
			default:
				// a signal is already pending, coalesce
			}
		}

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			utils.Logger.Error().Err(err).Msg("lead change stream closed with error")
		}
	}()

	return events, nil
}
