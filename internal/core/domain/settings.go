package domain

// StoreSettings is the single typed settings record for the storefront.
type StoreSettings struct {
	StoreName        string `json:"storeName"`
	SupportEmail     string `json:"supportEmail"`
	SupportPhone     string `json:"supportPhone,omitempty"`
	MaintenanceMode  bool   `json:"maintenanceMode"`
	B2BPricesVisible bool   `json:"b2bPricesVisible"` // show B2B pricing to approved business customers
	AuditFields
}
