package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeadType lead origin enum, set once at creation
type LeadType string

const (
	LeadTypeMANUAL  LeadType = "manual"
	LeadTypePLACE   LeadType = "place"
	LeadTypeWEBSITE LeadType = "website"
)

// LeadStatus qualification flag, orthogonal to pipeline stage
type LeadStatus string

const (
	LeadStatusNEW         LeadStatus = "new"
	LeadStatusQUALIFIED   LeadStatus = "qualified"
	LeadStatusUNQUALIFIED LeadStatus = "unqualified"
	LeadStatusOPEN        LeadStatus = "open"
)

// LeadStage pipeline position enum
type LeadStage string

const (
	StageNEW          LeadStage = "new"
	StageFIRSTCONTACT LeadStage = "first_contact"
	StagePROPOSAL     LeadStage = "proposal"
	StageNEGOTIATION  LeadStage = "negotiation"
	StageWON          LeadStage = "won"
	StageLOST         LeadStage = "lost"
)

// Lead prospective business contact
type Lead struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID           string             `bson:"userId" json:"userId"`
	CompanyName      string             `bson:"companyName" json:"companyName"`
	ContactName      string             `bson:"contactName,omitempty" json:"contactName,omitempty"`
	Industry         string             `bson:"industry,omitempty" json:"industry,omitempty"`
	Location         string             `bson:"location,omitempty" json:"location,omitempty"`
	Website          string             `bson:"website,omitempty" json:"website,omitempty"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email            string             `bson:"email,omitempty" json:"email,omitempty"`
	Type             LeadType           `bson:"type" json:"type"`
	Status           LeadStatus         `bson:"status" json:"status"`
	DealValue        float64            `bson:"dealValue" json:"dealValue"`
	Tags             []string           `bson:"tags" json:"tags"`
	Notes            string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Stage            LeadStage          `bson:"stage,omitempty" json:"stage"`
	KanbanOrder      int                `bson:"kanbanOrder" json:"kanbanOrder"`
	LastInteraction  time.Time          `bson:"lastInteractionAt,omitempty" json:"lastInteractionAt,omitempty"`
	Rating           float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	UserRatingsTotal int                `bson:"userRatingsTotal,omitempty" json:"userRatingsTotal,omitempty"`
	ExtractionDate   time.Time          `bson:"extractionDate,omitempty" json:"extractionDate,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	LastExportedAt   time.Time          `bson:"lastExportedAt,omitempty" json:"lastExportedAt,omitempty"`
}

// EffectiveStage leads persisted before the pipeline existed have no stage;
// they read as "new".
func (l *Lead) EffectiveStage() LeadStage {
	if l.Stage == "" {
		return StageNEW
	}
	return l.Stage
}

// LeadCreateRequest manual lead creation input
type LeadCreateRequest struct {
	CompanyName string   `json:"companyName" binding:"required"`
	ContactName string   `json:"contactName"`
	Industry    string   `json:"industry"`
	Location    string   `json:"location"`
	Website     string   `json:"website"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Status      string   `json:"status"`
	DealValue   *float64 `json:"dealValue"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
}

// LeadUpdateRequest partial update input; nil pointers leave fields untouched
type LeadUpdateRequest struct {
	CompanyName *string  `json:"companyName"`
	ContactName *string  `json:"contactName"`
	Industry    *string  `json:"industry"`
	Location    *string  `json:"location"`
	Website     *string  `json:"website"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	Status      *string  `json:"status"`
	DealValue   *float64 `json:"dealValue"`
	Notes       *string  `json:"notes"`
	Type        *string  `json:"type"`
}

// StageChangeRequest kanban drag-and-drop input
type StageChangeRequest struct {
	Stage       string `json:"stage" binding:"required"`
	KanbanOrder *int   `json:"kanbanOrder"`
}

// TagRequest tag add/remove input
type TagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

// ValidLeadStatus reports whether s is one of the four status values.
func ValidLeadStatus(s string) bool {
	switch LeadStatus(s) {
	case LeadStatusNEW, LeadStatusQUALIFIED, LeadStatusUNQUALIFIED, LeadStatusOPEN:
		return true
	}
	return false
}

// ValidLeadStage reports whether s is one of the six stage values.
func ValidLeadStage(s string) bool {
	switch LeadStage(s) {
	case StageNEW, StageFIRSTCONTACT, StagePROPOSAL, StageNEGOTIATION, StageWON, StageLOST:
		return true
	}
	return false
}
