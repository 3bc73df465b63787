package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrVendorPartyNumberNotUnique = errors.New("a vendor with this party number already exists")
	ErrCategoryCodeNotUnique      = errors.New("a category with this code already exists")
	ErrInvoiceAlreadyLinked       = errors.New("this invoice is already linked to a payment or document")
	ErrDocumentAlreadyMigrated    = errors.New("a document with this ID has already been migrated")
)
