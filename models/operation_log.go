package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OperationLog audit record for a mutating API request
type OperationLog struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Method        string             `json:"method" bson:"method"`
	Path          string             `json:"path" bson:"path"`
	OperatorID    string             `json:"operatorId" bson:"operatorId"`
	OperatorName  string             `json:"operatorName" bson:"operatorName"`
	RequestBody   interface{}        `json:"requestBody" bson:"requestBody"`
	StatusCode    int                `json:"statusCode" bson:"statusCode"`
	Success       bool               `json:"success" bson:"success"`
	ErrorMessage  string             `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	OperationTime time.Time          `json:"operationTime" bson:"operationTime"`
	ResponseTime  int64              `json:"responseTime" bson:"responseTime"` // milliseconds
	IPAddress     string             `json:"ipAddress" bson:"ipAddress"`
	UserAgent     string             `json:"userAgent" bson:"userAgent"`
}
