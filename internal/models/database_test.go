package models_test

import (
	"github.com/outlay-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestConnectInvalidDSN() {
	err := models.Connect("/this/path/does/not/exist/db")
	suite.Assert().NotNil(err)

	// Reconnect so that the teardown has a database to close
	suite.SetupTest()
}

func (suite *TestSuiteStandard) TestQueryErrorRewrite() {
	var expense models.Expense
	err := models.DB.First(&expense).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no expense matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDatabaseReturnsGeneralError() {
	suite.CloseDB()

	_, err := models.Expenses(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

// CloseDB closes the database connection. This enables testing the handling
// of database errors.
func (suite *TestSuiteStandard) CloseDB() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		suite.Assert().FailNowf("Failed to get database resource for teardown: %v", err.Error())
	}
	sqlDB.Close()
}
