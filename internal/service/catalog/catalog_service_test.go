package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Search(ctx context.Context, city string) ([]domain.Hotel, error) {
	args := m.Called(ctx, city)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) List(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.City), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) GetHotels(ctx context.Context, city string) ([]domain.Hotel, error) {
	args := m.Called(ctx, city)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockCache) SetHotels(ctx context.Context, city string, hotels []domain.Hotel) error {
	args := m.Called(ctx, city, hotels)
	return args.Error(0)
}

func sampleFlights() []domain.Flight {
	dep := time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC)
	return []domain.Flight{
		{ID: 1, FlightNumber: "AI101", DepartureCity: "Mumbai", ArrivalCity: "Delhi", DepartureTime: dep, ArrivalTime: dep.Add(135 * time.Minute), Price: 4999, SeatsAvailable: 120},
		{ID: 2, FlightNumber: "AI102", DepartureCity: "Delhi", ArrivalCity: "Mumbai", DepartureTime: dep.Add(3 * time.Hour), ArrivalTime: dep.Add(5 * time.Hour), Price: 4999, SeatsAvailable: 120},
	}
}

func TestCatalogService_SearchFlights_UnfilteredUsesCache(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockFlights, &MockHotelRepository{}, &MockCityRepository{}, mockCache)

	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(flights, nil).Once()

	result, err := service.SearchFlights(ctx, domain.FlightFilter{})
	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockFlights.AssertNotCalled(t, "Search")
}

func TestCatalogService_SearchFlights_CacheMissFillsCache(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockFlights, &MockHotelRepository{}, &MockCityRepository{}, mockCache)

	ctx := context.Background()
	flights := sampleFlights()
	filter := domain.FlightFilter{}

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), nil).Once()
	mockFlights.On("Search", ctx, filter).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.SearchFlights(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockFlights.AssertExpectations(t)
}

func TestCatalogService_SearchFlights_FilteredSkipsCache(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockFlights, &MockHotelRepository{}, &MockCityRepository{}, mockCache)

	ctx := context.Background()
	filter := domain.FlightFilter{DepartureCity: "Mumbai"}
	flights := sampleFlights()[:1]

	mockFlights.On("Search", ctx, filter).Return(flights, nil).Once()

	result, err := service.SearchFlights(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	for _, f := range result {
		assert.Equal(t, "Mumbai", f.DepartureCity)
	}

	mockFlights.AssertExpectations(t)
	mockCache.AssertNotCalled(t, "GetFlights")
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestCatalogService_SearchFlights_NoCache(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewCatalogService(mockFlights, &MockHotelRepository{}, &MockCityRepository{}, nil)

	ctx := context.Background()
	flights := sampleFlights()

	mockFlights.On("Search", ctx, domain.FlightFilter{}).Return(flights, nil).Once()

	result, err := service.SearchFlights(ctx, domain.FlightFilter{})
	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockFlights.AssertExpectations(t)
}

func TestCatalogService_SearchHotels_CacheHit(t *testing.T) {
	mockHotels := &MockHotelRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(&MockFlightRepository{}, mockHotels, &MockCityRepository{}, mockCache)

	ctx := context.Background()
	hotels := []domain.Hotel{{ID: 1, Name: "Taj Mahal Palace", City: "Mumbai", Rating: 4.8, Price: 12000}}

	mockCache.On("GetHotels", ctx, "Mumbai").Return(hotels, nil).Once()

	result, err := service.SearchHotels(ctx, "Mumbai")
	assert.NoError(t, err)
	assert.Equal(t, hotels, result)

	mockCache.AssertExpectations(t)
	mockHotels.AssertNotCalled(t, "Search")
}

func TestCatalogService_SearchHotels_CacheErrorFallsThrough(t *testing.T) {
	mockHotels := &MockHotelRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(&MockFlightRepository{}, mockHotels, &MockCityRepository{}, mockCache)

	ctx := context.Background()
	hotels := []domain.Hotel{{ID: 1, Name: "Taj Mahal Palace", City: "Mumbai"}}

	mockCache.On("GetHotels", ctx, "Mumbai").Return(([]domain.Hotel)(nil), errors.New("cache error")).Once()
	mockHotels.On("Search", ctx, "Mumbai").Return(hotels, nil).Once()
	mockCache.On("SetHotels", ctx, "Mumbai", hotels).Return(nil).Once()

	result, err := service.SearchHotels(ctx, "Mumbai")
	assert.NoError(t, err)
	assert.Equal(t, hotels, result)

	mockCache.AssertExpectations(t)
	mockHotels.AssertExpectations(t)
}

func TestCatalogService_GetHotel_NotFound(t *testing.T) {
	mockHotels := &MockHotelRepository{}
	service := NewCatalogService(&MockFlightRepository{}, mockHotels, &MockCityRepository{}, nil)

	ctx := context.Background()
	mockHotels.On("GetByID", ctx, int64(999)).Return(nil, domain.ErrNotFound).Once()

	result, err := service.GetHotel(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, result)

	mockHotels.AssertExpectations(t)
}

func TestCatalogService_ListCities(t *testing.T) {
	mockCities := &MockCityRepository{}
	service := NewCatalogService(&MockFlightRepository{}, &MockHotelRepository{}, mockCities, nil)

	ctx := context.Background()
	cities := []domain.City{{ID: 1, Name: "Delhi", Code: "DEL"}, {ID: 2, Name: "Mumbai", Code: "BOM"}}

	mockCities.On("List", ctx).Return(cities, nil).Once()

	result, err := service.ListCities(ctx)
	assert.NoError(t, err)
	assert.Equal(t, cities, result)

	mockCities.AssertExpectations(t)
}
