// Package cargorepo provides data transfer objects and mapping functions for
// cargo type persistence.
package cargorepo

import (
	"portops/internal/core/domain/model/cargo"
)

// CargoTypeDTO represents the database structure for persisting cargo types.
type CargoTypeDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	CargoName string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

// TableName specifies the database table name for cargo type entities.
func (CargoTypeDTO) TableName() string {
	return "cargo_types"
}

// FromDomain converts a cargo type to its database representation.
// Exported because dock persistence writes cargo references through the
// dock_cargo junction.
func FromDomain(aggregate *cargo.CargoType) CargoTypeDTO {
	return CargoTypeDTO{
		ID:        aggregate.ID(),
		CargoName: aggregate.Name(),
	}
}

// ToDomain converts a database DTO to a cargo type entity.
func ToDomain(dto CargoTypeDTO) (*cargo.CargoType, error) {
	return cargo.RestoreCargoType(dto.ID, dto.CargoName)
}
