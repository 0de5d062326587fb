// Package dockrepo provides data transfer objects and mapping functions for
// dock persistence, including the dock_cargo junction that records which
// cargo types each dock accepts.
package dockrepo

import (
	"portops/internal/adapters/out/postgres/cargorepo"
	"portops/internal/core/domain/model/cargo"
	"portops/internal/core/domain/model/dock"
)

// DockDTO represents the database structure for persisting dock aggregates.
type DockDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	DockCode   string `gorm:"type:varchar(10);uniqueIndex;not null"`
	DockLength int    `gorm:"not null"`
}

// TableName specifies the database table name for dock entities.
func (DockDTO) TableName() string {
	return "docks"
}

// DockCargoDTO represents one row of the dock/cargo junction. The pair is
// unique: a dock accepts a cargo type at most once.
type DockCargoDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	CargoTypeID int64 `gorm:"uniqueIndex:idx_dock_cargo_pair;not null"`
	DockID      int64 `gorm:"uniqueIndex:idx_dock_cargo_pair;index;not null"`
}

// TableName specifies the database table name for the junction.
func (DockCargoDTO) TableName() string {
	return "dock_cargo"
}

// fromDomain converts a dock domain aggregate to its database representation.
func fromDomain(aggregate *dock.Dock) DockDTO {
	return DockDTO{
		ID:         aggregate.ID(),
		DockCode:   aggregate.Code(),
		DockLength: aggregate.Length(),
	}
}

// junctionRows builds the dock_cargo rows for a dock's accepted cargo set.
func junctionRows(dockID int64, cargoTypes []cargo.CargoType) []DockCargoDTO {
	rows := make([]DockCargoDTO, 0, len(cargoTypes))
	for _, ct := range cargoTypes {
		rows = append(rows, DockCargoDTO{CargoTypeID: ct.ID(), DockID: dockID})
	}
	return rows
}

// toDomain converts a dock DTO plus its accepted cargo rows to a dock aggregate.
func toDomain(dto DockDTO, cargoDTOs []cargorepo.CargoTypeDTO) (*dock.Dock, error) {
	cargoTypes := make([]cargo.CargoType, 0, len(cargoDTOs))
	for _, cargoDTO := range cargoDTOs {
		ct, err := cargorepo.ToDomain(cargoDTO)
		if err != nil {
			return nil, err
		}
		cargoTypes = append(cargoTypes, *ct)
	}

	return dock.RestoreDock(dto.ID, dto.DockCode, dto.DockLength, cargoTypes)
}
