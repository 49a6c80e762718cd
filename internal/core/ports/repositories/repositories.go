package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	UserRepo     UserRepository
	CurrencyRepo CurrencyRateRepository
	ProductRepo  ProductRepository
	OrderRepo    OrderRepository
	BlogRepo     BlogRepository
	BrandRepo    BrandRepository
	CategoryRepo CategoryRepository
	SettingsRepo SettingsRepository
}
