package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Currency    CurrencySvcFacade
	Pricing     PricingSvcFacade
	Product     ProductSvcFacade
	Order       OrderSvcFacade
	Payment     PaymentSvcFacade
	Blog        BlogSvcFacade
	Brand       BrandSvcFacade
	Category    CategorySvcFacade
	Settings    SettingsSvcFacade
}
