package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicelens/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
		},
	}

	err := model.AfterFind(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "model.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestCreateSetsID() {
	vendor := models.Vendor{Name: "Acme GmbH"}

	suite.Require().Nil(models.DB.Create(&vendor).Error)
	suite.Assert().NotEqual(uuid.Nil, vendor.ID)
}

func (suite *TestSuiteStandard) TestInvoiceDateUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")
	date := time.Date(2025, 3, 17, 0, 0, 0, 0, tz)

	invoice := models.Invoice{InvoiceDate: &date}

	suite.Require().Nil(invoice.AfterFind(models.DB))
	suite.Assert().Equal(time.UTC, invoice.InvoiceDate.Location())
}
