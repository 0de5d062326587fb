package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portops/internal/adapters/out/postgres"
	"portops/internal/adapters/out/postgres/bookingrepo"
	"portops/internal/adapters/out/postgres/cargorepo"
	"portops/internal/adapters/out/postgres/companyrepo"
	"portops/internal/adapters/out/postgres/dockrepo"
	"portops/internal/adapters/out/postgres/shiprepo"
	"portops/internal/core/application/usecases/queries"
	"portops/internal/core/domain/model/booking"
	"portops/internal/core/domain/model/cargo"
	"portops/internal/core/domain/model/company"
	"portops/internal/core/domain/model/dock"
	"portops/internal/core/domain/model/kernel"
	"portops/internal/core/domain/model/ship"
	"portops/internal/pkg/errs"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ int64, _ any) {}

type ListBookingsQueryHandlerTestSuite struct {
	suite.Suite
	container   *tcpostgres.PostgresContainer
	db          *gorm.DB
	handler     queries.ListBookingsQueryHandler
	getHandler  queries.GetBookingQueryHandler
	bookingRepo *bookingrepo.GormBookingRepository
	shipID      int64
	dockID      int64
	otherDockID int64
}

func (suite *ListBookingsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))

	suite.handler = queries.NewListBookingsQueryHandler(db)
	suite.getHandler = queries.NewGetBookingQueryHandler(db)

	tracker := &mockAggregateTracker{}
	suite.bookingRepo = bookingrepo.NewGormBookingRepository(db, db, tracker)

	containers, err := cargo.NewCargoType("Containers")
	suite.Require().NoError(err)
	suite.Require().NoError(cargorepo.NewGormCargoTypeRepository(db, tracker).Add(ctx, containers))

	owner, err := company.NewCompany("Evergreen Marine", "Taiwan", "ops@evergreen.example", "+886100000", "1 Harbor Road, Taipei")
	suite.Require().NoError(err)
	suite.Require().NoError(companyrepo.NewGormCompanyRepository(db, tracker).Add(ctx, owner))

	vessel, err := ship.NewShip("Ever Given", 400, "Panama", *containers, owner.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(shiprepo.NewGormShipRepository(db, tracker).Add(ctx, vessel))
	suite.shipID = vessel.ID()

	dockRepo := dockrepo.NewGormDockRepository(db, tracker)

	berth, err := dock.NewDock("D1", 450, []cargo.CargoType{*containers})
	suite.Require().NoError(err)
	suite.Require().NoError(dockRepo.Add(ctx, berth))
	suite.dockID = berth.ID()

	other, err := dock.NewDock("D2", 450, []cargo.CargoType{*containers})
	suite.Require().NoError(err)
	suite.Require().NoError(dockRepo.Add(ctx, other))
	suite.otherDockID = other.ID()
}

func (suite *ListBookingsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListBookingsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE bookings CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ListBookingsQueryHandlerTestSuite) parse(value string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
	suite.Require().NoError(err)
	return parsed
}

func (suite *ListBookingsQueryHandlerTestSuite) addBooking(dockID int64, start, end string, status booking.Status) *booking.Booking {
	window, err := kernel.NewTimeWindow(suite.parse(start), suite.parse(end))
	suite.Require().NoError(err)
	b, err := booking.NewBooking(suite.shipID, dockID, window, status, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.bookingRepo.Add(context.Background(), b))
	return b
}

func (suite *ListBookingsQueryHandlerTestSuite) TestHandle_NoFilters_ReturnsAllOrderedByStart() {
	suite.addBooking(suite.dockID, "2030-01-02 08:00", "2030-01-02 12:00", booking.Confirmed)
	suite.addBooking(suite.dockID, "2030-01-01 08:00", "2030-01-01 12:00", booking.Pending)

	query, err := queries.NewListBookingsQuery(nil, nil, nil, nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].BookingStart.Before(result[1].BookingStart))
	suite.Equal("Ever Given", result[0].Ship.Name)
	suite.Equal("Containers", result[0].Ship.CargoTypeName)
	suite.Equal("D1", result[0].Dock.Code)
}

func (suite *ListBookingsQueryHandlerTestSuite) TestHandle_TimeWindowFilters() {
	// end > from AND start < to: half-open intersection with the filter window.
	inside := suite.addBooking(suite.dockID, "2030-01-01 09:00", "2030-01-01 11:00", booking.Confirmed)
	endsAtFrom := suite.addBooking(suite.dockID, "2030-01-01 06:00", "2030-01-01 08:00", booking.Pending)
	startsAtTo := suite.addBooking(suite.dockID, "2030-01-01 14:00", "2030-01-01 16:00", booking.Pending)

	from := suite.parse("2030-01-01 08:00")
	to := suite.parse("2030-01-01 14:00")
	query, err := queries.NewListBookingsQuery(&from, &to, nil, nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(inside.ID(), result[0].ID)
	suite.NotEqual(endsAtFrom.ID(), result[0].ID)
	suite.NotEqual(startsAtTo.ID(), result[0].ID)
}

func (suite *ListBookingsQueryHandlerTestSuite) TestHandle_StatusAndDockFilters() {
	confirmed := suite.addBooking(suite.dockID, "2030-01-01 08:00", "2030-01-01 12:00", booking.Confirmed)
	suite.addBooking(suite.dockID, "2030-01-02 08:00", "2030-01-02 12:00", booking.Pending)
	suite.addBooking(suite.otherDockID, "2030-01-01 08:00", "2030-01-01 12:00", booking.Confirmed)

	status := booking.Confirmed
	query, err := queries.NewListBookingsQuery(nil, nil, &status, &suite.dockID, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(confirmed.ID(), result[0].ID)
	suite.Equal("CONFIRMED", result[0].Status)
}

func (suite *ListBookingsQueryHandlerTestSuite) TestGetBooking() {
	created := suite.addBooking(suite.dockID, "2030-01-01 08:00", "2030-01-01 12:00", booking.Confirmed)

	query, err := queries.NewGetBookingQuery(created.ID())
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(created.ID(), resp.ID)
	suite.Equal("Ever Given", resp.Ship.Name)
	suite.Equal(400, resp.Ship.Length)
	suite.Equal("D1", resp.Dock.Code)
	suite.True(resp.BookingEnd.Equal(suite.parse("2030-01-01 12:00")))
}

func (suite *ListBookingsQueryHandlerTestSuite) TestGetBooking_NotFound() {
	query, err := queries.NewGetBookingQuery(999)
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestListBookingsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ListBookingsQueryHandlerTestSuite))
}
