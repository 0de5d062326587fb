// Package shiprepo provides data transfer objects and mapping functions for
// ship persistence. Ships are loaded together with their cargo type so the
// aggregate can be restored in one read.
package shiprepo

import (
	"portops/internal/adapters/out/postgres/cargorepo"
	"portops/internal/core/domain/model/ship"
)

// ShipDTO represents the database structure for persisting ship aggregates.
type ShipDTO struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	ShipName            string `gorm:"type:varchar(100);uniqueIndex;not null"`
	ShipLength          int    `gorm:"not null"`
	RegistrationCountry string `gorm:"type:varchar(50);not null"`
	CargoTypeID         int64  `gorm:"index;not null"`
	CompanyID           int64  `gorm:"index;not null"`
}

// TableName specifies the database table name for ship entities.
func (ShipDTO) TableName() string {
	return "ships"
}

// fromDomain converts a ship domain aggregate to its database representation.
func fromDomain(aggregate *ship.Ship) ShipDTO {
	return ShipDTO{
		ID:                  aggregate.ID(),
		ShipName:            aggregate.Name(),
		ShipLength:          aggregate.Length(),
		RegistrationCountry: aggregate.RegistrationCountry(),
		CargoTypeID:         aggregate.CargoType().ID(),
		CompanyID:           aggregate.CompanyID(),
	}
}

// toDomain converts a database DTO plus its cargo type row to a ship aggregate.
func toDomain(dto ShipDTO, cargoDTO cargorepo.CargoTypeDTO) (*ship.Ship, error) {
	cargoType, err := cargorepo.ToDomain(cargoDTO)
	if err != nil {
		return nil, err
	}

	return ship.RestoreShip(
		dto.ID,
		dto.ShipName,
		dto.ShipLength,
		dto.RegistrationCountry,
		*cargoType,
		dto.CompanyID,
	)
}
