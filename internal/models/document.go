package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Document is the provenance record for one migrated source document.
//
// The ID is the external document ID of the source system, not a
// generated one. Every migrated document owns exactly one invoice.
type Document struct {
	ID string `gorm:"primaryKey"`
	Timestamps
	FileName       string
	FilePath       *string
	FileSizeBytes  *int64
	FileType       *string
	Status         *string
	OrganizationID *string
	DepartmentID   *string
	Metadata       datatypes.JSON
	ExtractedData  datatypes.JSON
	Validated      bool
	InvoiceID      uuid.UUID `gorm:"uniqueIndex"`
	Invoice        Invoice   `json:"-"`
}
