package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/core/services"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRateRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRateRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo, "TRY")
}

func (suite *CurrencyServiceTestSuite) TestGetRateMap_FallsBackWhenStoreUnreachable() {
	ctx := context.Background()
	suite.mockRepo.On("ListRates", ctx).Return(nil, errors.New("connection refused")).Once()

	rates := suite.service.GetRateMap(ctx)

	suite.Require().Len(rates, 3)
	suite.True(rates["TRY"].Equal(decimal.NewFromInt(1)))
	suite.True(rates["USD"].Equal(decimal.NewFromFloat(44.0)))
	suite.True(rates["EUR"].Equal(decimal.NewFromFloat(55.0)))
}

func (suite *CurrencyServiceTestSuite) TestGetRateMap_FallsBackWhenStoreEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListRates", ctx).Return([]domain.CurrencyRate{}, nil).Once()

	rates := suite.service.GetRateMap(ctx)

	suite.True(rates["TRY"].Equal(decimal.NewFromInt(1)))
	suite.True(rates["USD"].Equal(decimal.NewFromFloat(44.0)))
	suite.True(rates["EUR"].Equal(decimal.NewFromFloat(55.0)))
}

func (suite *CurrencyServiceTestSuite) TestGetRateMap_StoredRatesOverrideDefaults() {
	ctx := context.Background()
	stored := []domain.CurrencyRate{
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("45.5")},
		{CurrencyCode: "GBP", Rate: decimal.RequireFromString("60.25")},
	}
	suite.mockRepo.On("ListRates", ctx).Return(stored, nil).Once()

	rates := suite.service.GetRateMap(ctx)

	suite.True(rates["TRY"].Equal(decimal.NewFromInt(1)), "base currency pinned to 1")
	suite.True(rates["USD"].Equal(decimal.RequireFromString("45.5")))
	suite.True(rates["EUR"].Equal(decimal.NewFromFloat(55.0)), "missing stored rate keeps default")
	suite.True(rates["GBP"].Equal(decimal.RequireFromString("60.25")))
}

func (suite *CurrencyServiceTestSuite) TestListRates_EmptyStoreReturnsEmptySlice() {
	ctx := context.Background()
	suite.mockRepo.On("ListRates", ctx).Return(nil, nil).Once()

	rates, err := suite.service.ListRates(ctx)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
