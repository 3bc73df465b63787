package importer

import "errors"

var (
	// ErrNoExtractedData marks a document without an extraction
	// payload. Such documents are skipped, not failed.
	ErrNoExtractedData = errors.New("the document has no extracted data")

	// ErrMissingDataBlock is returned when one of the required
	// extraction blocks (vendor, customer, payment, invoice, summary)
	// is absent.
	ErrMissingDataBlock = errors.New("the extracted data is missing a required block")

	// ErrMissingRequiredField is returned when a required scalar did
	// not extract to a value.
	ErrMissingRequiredField = errors.New("a required field is missing from the extracted data")
)
