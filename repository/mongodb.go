package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leadflowbr/leadflow_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection         = "users"
	LeadsCollection         = "leads"
	OperationLogsCollection = "operation_logs"
)

var (
	client *mongo.Client
	db     *mongo.Database
	ctx    = context.Background()
)

// InitMongoDB connects to MongoDB and selects the database.
func InitMongoDB(uri, dbName string) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping MongoDB: %w", err)
	}

	db = client.Database(dbName)
	utils.Logger.Info().Str("database", dbName).Msg("connected to MongoDB")

	return nil
}

// CloseMongoDB disconnects the client.
func CloseMongoDB() {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("MongoDB disconnect failed")
			return
		}
		utils.Logger.Info().Msg("MongoDB disconnected")
	}
}

// GetDB returns the database selected by InitMongoDB.
func GetDB() *mongo.Database {
	return db
}

// GetContext returns the base context for store operations.
func GetContext() context.Context {
	return ctx
}

// Collection returns the named collection.
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

// ExecuteDbOperation runs a store operation with bounded retries on transient errors.
func ExecuteDbOperation(operation func() (interface{}, error), retries int) (interface{}, error) {
	if retries <= 0 {
		retries = 3
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}

		lastErr = err
		utils.Logger.Error().Err(err).Msgf("db operation failed, retry (%d/%d)", i+1, retries)

		if !isRetryableError(err) {
			break
		}

		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}

	return nil, lastErr
}

// isRetryableError reports whether the error is worth retrying.
func isRetryableError(err error) bool {
	retryableCodes := map[int]bool{
		6:     true, // HostUnreachable
		7:     true, // HostNotFound
		89:    true, // NetworkTimeout
		91:    true, // ShutdownInProgress
		189:   true, // PrimarySteppedDown
		10107: true, // NotMaster
		13436: true, // NotMasterNoSlaveOk
		11600: true, // InterruptedAtShutdown
		11602: true, // InterruptedDueToReplStateChange
		10058: true, // ConnectionReset
	}

	if cmdErr, ok := err.(mongo.CommandError); ok {
		return retryableCodes[int(cmdErr.Code)]
	}

	return isNetworkError(err)
}

// isNetworkError checks for common transport failures by message.
func isNetworkError(err error) bool {
	errMsg := strings.ToLower(err.Error())
	networkErrors := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"no reachable servers",
		"timeout",
		"context deadline exceeded",
		"server selection error",
	}

	for _, ne := range networkErrors {
		if strings.Contains(errMsg, ne) {
			return true
		}
	}

	return false
}

// InitializeCollections creates collections and indexes on startup.
func InitializeCollections() error {
	collections := []string{
		UsersCollection,
		LeadsCollection,
		OperationLogsCollection,
	}

	for _, collName := range collections {
		collExists, err := CollectionExists(collName)
		if err != nil {
			return fmt.Errorf("check collection: %w", err)
		}

		if !collExists {
			if err := db.CreateCollection(ctx, collName); err != nil {
				return fmt.Errorf("create collection: %w", err)
			}
			utils.Logger.Info().Str("collection", collName).Msg("collection created")
		}
	}

	if err := ensureIndexes(); err != nil {
		return err
	}

	utils.LogInfo(map[string]interface{}{"collections": len(collections)}, "collections initialized")
	return nil
}

// ensureIndexes sets up the owner and login indexes.
func ensureIndexes() error {
	unique := true

	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: &options.IndexOptions{Unique: &unique},
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	_, err = db.Collection(LeadsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("leads owner index: %w", err)
	}

	return nil
}

// CollectionExists reports whether the named collection exists.
func CollectionExists(collName string) (bool, error) {
	collections, err := db.ListCollectionNames(ctx, bson.M{"name": collName})
	if err != nil {
		return false, err
	}

	for _, name := range collections {
		if name == collName {
			return true, nil
		}
	}

	return false, nil
}

// GetDatabaseStatus returns per-collection document counts.
func GetDatabaseStatus() (map[string]interface{}, error) {
	collections := []string{
		UsersCollection,
		LeadsCollection,
		OperationLogsCollection,
	}

	result := make(map[string]interface{})

	for _, collName := range collections {
		coll := db.Collection(collName)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.Logger.Error().Err(err).Str("collection", collName).Msg("count failed")
			result[collName] = map[string]interface{}{
				"count": 0,
				"error": err.Error(),
			}
			continue
		}
		result[collName] = map[string]interface{}{
			"count": count,
		}
	}

	return result, nil
}
