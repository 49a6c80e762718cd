package mapping

import (
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Email:          d.Email,
		Name:           d.Name,
		PasswordHash:   toNullString(d.PasswordHash),
		Role:           string(d.Role),
		B2BStatus:      string(d.B2BStatus),
		CompanyName:    toNullString(d.CompanyName),
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: toNullString(d.ProviderUserID),
		EmailVerified:  d.EmailVerified,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Email:          m.Email,
		Name:           m.Name,
		PasswordHash:   fromNullString(m.PasswordHash),
		Role:           domain.UserRole(m.Role),
		B2BStatus:      domain.B2BStatus(m.B2BStatus),
		CompanyName:    fromNullString(m.CompanyName),
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: fromNullString(m.ProviderUserID),
		EmailVerified:  m.EmailVerified,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of model Users to domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
