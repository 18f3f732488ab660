// Package tenant provides company-level database scoping for GORM.
//
// Every read and write against a company-owned table goes through
// CompanyScope, which injects the WHERE company_id = ? condition. The
// company ID is always an explicit parameter; there is no ambient
// context-derived filtering, so a query that forgets the scope fails
// review rather than silently widening.
package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyScope applies company filtering to GORM queries
func CompanyScope(companyID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
