// Package companyrepo provides data transfer objects and mapping functions
// for shipping company persistence.
package companyrepo

import (
	"portops/internal/core/domain/model/company"
)

// CompanyDTO represents the database structure for persisting companies.
type CompanyDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	CompanyName string `gorm:"type:varchar(100);not null"`
	Country     string `gorm:"type:varchar(50);not null"`
	Email       string `gorm:"type:varchar(150);not null"`
	Phone       string `gorm:"type:varchar(20);not null"`
	Address     string `gorm:"not null"`
}

// TableName specifies the database table name for company entities.
func (CompanyDTO) TableName() string {
	return "companies"
}

// fromDomain converts a company to its database representation.
func fromDomain(aggregate *company.Company) CompanyDTO {
	return CompanyDTO{
		ID:          aggregate.ID(),
		CompanyName: aggregate.Name(),
		Country:     aggregate.Country(),
		Email:       aggregate.Email(),
		Phone:       aggregate.Phone(),
		Address:     aggregate.Address(),
	}
}

// toDomain converts a database DTO to a company entity.
func toDomain(dto CompanyDTO) (*company.Company, error) {
	return company.RestoreCompany(dto.ID, dto.CompanyName, dto.Country, dto.Email, dto.Phone, dto.Address)
}
