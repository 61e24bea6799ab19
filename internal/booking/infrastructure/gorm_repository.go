package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/viajabus/booking/internal/booking/domain"
	"github.com/viajabus/booking/pkg/application"
)

// NewGormDB opens the postgres database and migrates the booking schema.
func NewGormDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.BusStation{},
		&domain.Travel{},
		&domain.Passenger{},
		&domain.Buyer{},
		&domain.User{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return db, nil
}

// GormTravelRepository persists travels in postgres. City searches join
// against the bus_stations table, so AddBusStations is a no-op here.
type GormTravelRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormTravelRepository(db *gorm.DB, logger application.AppLogger) *GormTravelRepository {
	return &GormTravelRepository{db: db, logger: logger}
}

func (r *GormTravelRepository) FindAll(ctx context.Context) ([]*domain.Travel, error) {
	var travels []*domain.Travel
	if err := r.db.WithContext(ctx).Find(&travels).Error; err != nil {
		return nil, err
	}
	return travels, nil
}

func (r *GormTravelRepository) FindByID(ctx context.Context, id int64) (*domain.Travel, error) {
	var travel domain.Travel
	err := r.db.WithContext(ctx).First(&travel, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &travel, nil
}

func (r *GormTravelRepository) Create(ctx context.Context, travel *domain.Travel) (*domain.Travel, error) {
	if err := r.db.WithContext(ctx).Create(travel).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save travel", err, map[string]interface{}{
			"travel": travel,
		})
		return nil, err
	}
	return travel, nil
}

func (r *GormTravelRepository) Delete(ctx context.Context, id int64) (*domain.Travel, error) {
	travel, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if travel == nil {
		return nil, domain.NewNotFoundError("travel not found")
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Travel{}, id).Error; err != nil {
		return nil, err
	}
	return travel, nil
}

func (r *GormTravelRepository) FindByOriginCity(ctx context.Context, city string) ([]*domain.Travel, error) {
	return r.findByStationCity(ctx, "travels.departure_station_id", city, nil)
}

func (r *GormTravelRepository) FindByDestinationCity(ctx context.Context, city string) ([]*domain.Travel, error) {
	return r.findByStationCity(ctx, "travels.arrival_station_id", city, nil)
}

func (r *GormTravelRepository) FindByDepartureDateAndCity(ctx context.Context, date time.Time, city string) ([]*domain.Travel, error) {
	return r.findByStationCity(ctx, "travels.departure_station_id", city, &date)
}

func (r *GormTravelRepository) findByStationCity(ctx context.Context, stationColumn, city string, date *time.Time) ([]*domain.Travel, error) {
	var travels []*domain.Travel
	query := r.db.WithContext(ctx).
		Joins(fmt.Sprintf("JOIN bus_stations ON bus_stations.id = %s", stationColumn)).
		Where("bus_stations.city = ?", city)
	if date != nil {
		query = query.Where("travels.departure_date = ?", *date)
	}
	if err := query.Find(&travels).Error; err != nil {
		return nil, err
	}
	return travels, nil
}

func (r *GormTravelRepository) AddBusStations(ctx context.Context, stations []*domain.BusStation) error {
	// The SQL joins read the station table directly.
	return nil
}

// GormPassengerRepository persists passengers in postgres.
type GormPassengerRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormPassengerRepository(db *gorm.DB, logger application.AppLogger) *GormPassengerRepository {
	return &GormPassengerRepository{db: db, logger: logger}
}

func (r *GormPassengerRepository) FindAll(ctx context.Context) ([]*domain.Passenger, error) {
	var passengers []*domain.Passenger
	if err := r.db.WithContext(ctx).Find(&passengers).Error; err != nil {
		return nil, err
	}
	return passengers, nil
}

func (r *GormPassengerRepository) FindByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	var passenger domain.Passenger
	err := r.db.WithContext(ctx).First(&passenger, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &passenger, nil
}

func (r *GormPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) (*domain.Passenger, error) {
	if err := r.db.WithContext(ctx).Create(passenger).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save passenger", err, map[string]interface{}{
			"passenger": passenger,
		})
		return nil, err
	}
	return passenger, nil
}

func (r *GormPassengerRepository) Delete(ctx context.Context, id int64) (*domain.Passenger, error) {
	passenger, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if passenger == nil {
		return nil, domain.NewNotFoundError("passenger not found")
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Passenger{}, id).Error; err != nil {
		return nil, err
	}
	return passenger, nil
}

// GormBuyerRepository persists buyers in postgres.
type GormBuyerRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormBuyerRepository(db *gorm.DB, logger application.AppLogger) *GormBuyerRepository {
	return &GormBuyerRepository{db: db, logger: logger}
}

func (r *GormBuyerRepository) FindAll(ctx context.Context) ([]*domain.Buyer, error) {
	var buyers []*domain.Buyer
	if err := r.db.WithContext(ctx).Find(&buyers).Error; err != nil {
		return nil, err
	}
	return buyers, nil
}

func (r *GormBuyerRepository) FindByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	var buyer domain.Buyer
	err := r.db.WithContext(ctx).First(&buyer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &buyer, nil
}

func (r *GormBuyerRepository) Create(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	if err := r.db.WithContext(ctx).Create(buyer).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save buyer", err, map[string]interface{}{
			"buyer": buyer,
		})
		return nil, err
	}
	return buyer, nil
}

// GormBusStationRepository persists stations in postgres.
type GormBusStationRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormBusStationRepository(db *gorm.DB, logger application.AppLogger) *GormBusStationRepository {
	return &GormBusStationRepository{db: db, logger: logger}
}

func (r *GormBusStationRepository) FindAll(ctx context.Context) ([]*domain.BusStation, error) {
	var stations []*domain.BusStation
	if err := r.db.WithContext(ctx).Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *GormBusStationRepository) FindByID(ctx context.Context, id int64) (*domain.BusStation, error) {
	var station domain.BusStation
	err := r.db.WithContext(ctx).First(&station, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &station, nil
}

func (r *GormBusStationRepository) Create(ctx context.Context, station *domain.BusStation) (*domain.BusStation, error) {
	if err := r.db.WithContext(ctx).Create(station).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save bus station", err, map[string]interface{}{
			"station": station,
		})
		return nil, err
	}
	return station, nil
}

// GormUserRepository persists users in postgres.
type GormUserRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormUserRepository(db *gorm.DB, logger application.AppLogger) *GormUserRepository {
	return &GormUserRepository{db: db, logger: logger}
}

func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findBy(ctx, "email = ?", email)
}

func (r *GormUserRepository) FindByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	return r.findBy(ctx, "cpf = ?", cpf)
}

func (r *GormUserRepository) findBy(ctx context.Context, condition string, value string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where(condition, value).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save user", err, map[string]interface{}{
			"user_email": user.Email,
		})
		return nil, err
	}
	return user, nil
}
