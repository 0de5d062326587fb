package commands_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"portops/internal/core/application/usecases/commands"
	"portops/internal/core/domain/model/booking"
	"portops/internal/core/domain/model/cargo"
	"portops/internal/core/domain/model/company"
	"portops/internal/core/domain/model/dock"
	"portops/internal/core/domain/model/ship"
	"portops/internal/core/ports"
)

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingRepository) Get(ctx context.Context, id int64) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}
func (m *MockBookingRepository) ExistsForShip(ctx context.Context, shipID int64) (bool, error) {
	args := m.Called(ctx, shipID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepository) ExistsForDock(ctx context.Context, dockID int64) (bool, error) {
	args := m.Called(ctx, dockID)
	return args.Bool(0), args.Error(1)
}

type MockShipRepository struct{ mock.Mock }

func (m *MockShipRepository) Add(_ context.Context, _ *ship.Ship) error {
	return errors.New("not implemented in mock")
}
func (m *MockShipRepository) Update(_ context.Context, _ *ship.Ship) error {
	return errors.New("not implemented in mock")
}
func (m *MockShipRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockShipRepository) Get(ctx context.Context, id int64) (*ship.Ship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ship.Ship), args.Error(1)
}

type MockDockRepository struct{ mock.Mock }

func (m *MockDockRepository) Add(_ context.Context, _ *dock.Dock) error {
	return errors.New("not implemented in mock")
}
func (m *MockDockRepository) Update(_ context.Context, _ *dock.Dock) error {
	return errors.New("not implemented in mock")
}
func (m *MockDockRepository) Delete(_ context.Context, _ int64) error {
	return errors.New("not implemented in mock")
}
func (m *MockDockRepository) Get(ctx context.Context, id int64) (*dock.Dock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dock.Dock), args.Error(1)
}
func (m *MockDockRepository) GetByCode(_ context.Context, _ string) (*dock.Dock, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCargoTypeRepository struct{ mock.Mock }

func (m *MockCargoTypeRepository) Add(_ context.Context, _ *cargo.CargoType) error {
	return errors.New("not implemented in mock")
}
func (m *MockCargoTypeRepository) Update(_ context.Context, _ *cargo.CargoType) error {
	return errors.New("not implemented in mock")
}
func (m *MockCargoTypeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCargoTypeRepository) Get(ctx context.Context, id int64) (*cargo.CargoType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.CargoType), args.Error(1)
}
func (m *MockCargoTypeRepository) GetByIDs(ctx context.Context, ids []int64) ([]cargo.CargoType, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cargo.CargoType), args.Error(1)
}
func (m *MockCargoTypeRepository) InUse(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Add(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCompanyRepository) Get(ctx context.Context, id int64) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}
// MockUoW satisfies both commands.BookingUoW and commands.UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}
func (m *MockUoW) ShipRepository() ports.ShipRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipRepository)
}
func (m *MockUoW) DockRepository() ports.DockRepository {
	args := m.Called()
	return args.Get(0).(ports.DockRepository)
}
func (m *MockUoW) CargoTypeRepository() ports.CargoTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoTypeRepository)
}
func (m *MockUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
