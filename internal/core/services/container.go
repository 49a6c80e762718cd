package services

import (
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/platform/config"
)

// NewContainer wires all services with their repository dependencies and
// returns the container handlers consume.
func NewContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	payment := NewPaymentService(cfg.PaymentGatewayBaseURL)

	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Currency:    NewCurrencyService(repos.CurrencyRepo, cfg.BaseCurrency),
		Pricing:     NewPricingService(repos.ProductRepo, repos.CurrencyRepo, cfg.BaseCurrency),
		Product:     NewProductService(repos.ProductRepo, repos.CurrencyRepo, cfg.BaseCurrency),
		Order:       NewOrderService(repos.OrderRepo, repos.ProductRepo, payment),
		Payment:     payment,
		Blog:        NewBlogService(repos.BlogRepo),
		Brand:       NewBrandService(repos.BrandRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Settings:    NewSettingsService(repos.SettingsRepo),
	}
}

// Compile-time checks that service implementations satisfy their facades.
var (
	_ portssvc.UserSvcFacade        = (*UserService)(nil)
	_ portssvc.TokenSvcFacade       = (*TokenService)(nil)
	_ portssvc.GoogleOAuthSvcFacade = (*GoogleOAuthService)(nil)
	_ portssvc.CurrencySvcFacade    = (*CurrencyService)(nil)
	_ portssvc.PricingSvcFacade     = (*PricingService)(nil)
	_ portssvc.ProductSvcFacade     = (*ProductService)(nil)
	_ portssvc.OrderSvcFacade       = (*OrderService)(nil)
	_ portssvc.PaymentSvcFacade     = (*PaymentService)(nil)
	_ portssvc.BlogSvcFacade        = (*BlogService)(nil)
	_ portssvc.BrandSvcFacade       = (*BrandService)(nil)
	_ portssvc.CategorySvcFacade    = (*CategoryService)(nil)
	_ portssvc.SettingsSvcFacade    = (*SettingsService)(nil)
)
