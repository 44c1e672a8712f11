package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskStatus string

const (
	ImportStatusQueued     ImportTaskStatus = "queued"
	ImportStatusProcessing ImportTaskStatus = "processing"
	ImportStatusCompleted  ImportTaskStatus = "completed"
	ImportStatusFailed     ImportTaskStatus = "failed"
)

// ImportTask tracks a catalog import from a Google Sheets spreadsheet.
type ImportTask struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Status        ImportTaskStatus   `bson:"status" json:"status"`
	SpreadsheetID string             `bson:"spreadsheet_id" json:"spreadsheet_id"`
	Products      int                `bson:"products" json:"products"`
	Categories    int                `bson:"categories" json:"categories"`
	ErrorMessage  string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RetryCount    int                `bson:"retry_count" json:"retry_count"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
