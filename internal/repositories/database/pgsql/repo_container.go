package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	currencyRepo := newPgxCurrencyRateRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool)
	blogRepo := newPgxBlogRepository(dbPool)
	brandRepo := newPgxBrandRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:     userRepo,
		CurrencyRepo: currencyRepo,
		ProductRepo:  productRepo,
		OrderRepo:    orderRepo,
		BlogRepo:     blogRepo,
		BrandRepo:    brandRepo,
		CategoryRepo: categoryRepo,
		SettingsRepo: settingsRepo,
	}
}
