package postgres

import (
	"gorm.io/gorm"

	"portops/internal/adapters/out/postgres/bookingrepo"
	"portops/internal/adapters/out/postgres/cargorepo"
	"portops/internal/adapters/out/postgres/companyrepo"
	"portops/internal/adapters/out/postgres/dockrepo"
	"portops/internal/adapters/out/postgres/shiprepo"
)

// exclusionConstraintDDL installs the dock exclusivity rule: no two
// CONFIRMED bookings on the same dock may have overlapping closed
// intervals. btree_gist lets the GiST index mix the equality column with
// the range.
const exclusionConstraintDDL = `
ALTER TABLE bookings ADD CONSTRAINT bookings_confirmed_dock_no_overlap
EXCLUDE USING gist (
	dock_id WITH =,
	tstzrange(booking_start, booking_end, '[]') WITH &&
) WHERE (booking_status = 'CONFIRMED')`

// Migrate creates the schema and the booking exclusion constraint.
// AutoMigrate cannot express exclusion constraints, so the constraint is
// applied with raw DDL guarded by a catalog lookup to stay re-runnable.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&companyrepo.CompanyDTO{},
		&cargorepo.CargoTypeDTO{},
		&shiprepo.ShipDTO{},
		&dockrepo.DockDTO{},
		&dockrepo.DockCargoDTO{},
		&bookingrepo.BookingDTO{},
	)
	if err != nil {
		return err
	}

	if err = db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}

	var count int64
	err = db.Raw(
		"SELECT count(*) FROM pg_constraint WHERE conname = ?",
		"bookings_confirmed_dock_no_overlap",
	).Scan(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Exec(exclusionConstraintDDL).Error
}
