package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/invoicelens/backend/internal/importer/extract"
	"github.com/invoicelens/backend/internal/models"
	"gorm.io/datatypes"
)

// SourceDocument is one record of the document extraction dump.
type SourceDocument struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	FilePath       *string         `json:"filePath"`
	FileSize       fileSize        `json:"fileSize"`
	FileType       *string         `json:"fileType"`
	Status         *string         `json:"status"`
	OrganizationID *string         `json:"organizationId"`
	DepartmentID   *string         `json:"departmentId"`
	Metadata       json.RawMessage `json:"metadata"`
	Validated      bool            `json:"isValidatedByHuman"`
	CreatedAt      *extract.Field  `json:"createdAt"`
	UpdatedAt      *extract.Field  `json:"updatedAt"`
	ExtractedData  json.RawMessage `json:"extractedData"`
}

// fileSize handles the {"$numberLong": "1234"} encoding of the dump.
// Anything else decodes to an absent size.
type fileSize struct {
	Bytes *int64
}

func (f *fileSize) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		NumberLong string `json:"$numberLong"`
	}

	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil
	}

	bytes, err := strconv.ParseInt(wrapper.NumberLong, 10, 64)
	if err != nil {
		return nil
	}

	f.Bytes = &bytes
	return nil
}

// payload parses the extraction payload out of the raw extractedData.
// It returns nil when the document carries no usable payload.
func (d SourceDocument) payload() *extract.Payload {
	if len(d.ExtractedData) == 0 {
		return nil
	}

	var wrapper struct {
		LLMData *extract.Payload `json:"llmData"`
	}

	if err := json.Unmarshal(d.ExtractedData, &wrapper); err != nil {
		return nil
	}

	return wrapper.LLMData
}

// model builds the provenance record for the document, linked to the
// invoice that was created for it.
func (d SourceDocument) model(invoiceID uuid.UUID) models.Document {
	document := models.Document{
		ID:             d.ID,
		FileName:       d.Name,
		FilePath:       d.FilePath,
		FileSizeBytes:  d.FileSize.Bytes,
		FileType:       d.FileType,
		Status:         d.Status,
		OrganizationID: d.OrganizationID,
		DepartmentID:   d.DepartmentID,
		Validated:      d.Validated,
		InvoiceID:      invoiceID,
	}

	if len(d.Metadata) > 0 {
		document.Metadata = datatypes.JSON(d.Metadata)
	}

	if len(d.ExtractedData) > 0 {
		document.ExtractedData = datatypes.JSON(d.ExtractedData)
	}

	// Keep the source system's timestamps when they parse. gorm fills
	// in the current time for the ones that stay zero.
	if created := extract.Date(d.CreatedAt); created != nil {
		document.CreatedAt = *created
	}

	if updated := extract.Date(d.UpdatedAt); updated != nil {
		document.UpdatedAt = *updated
	}

	return document
}

// LoadDocuments reads a document extraction dump from a JSON file.
func LoadDocuments(path string) ([]SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading the document dump failed: %w", err)
	}

	var documents []SourceDocument
	if err := json.Unmarshal(data, &documents); err != nil {
		return nil, fmt.Errorf("parsing the document dump failed: %w", err)
	}

	return documents, nil
}
