package catalog

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
)

type CatalogUseCase interface {
	SearchFlights(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	SearchHotels(ctx context.Context, city string) ([]domain.Hotel, error)
	GetHotel(ctx context.Context, id int64) (*domain.Hotel, error)
	ListCities(ctx context.Context) ([]domain.City, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	GetHotels(ctx context.Context, city string) ([]domain.Hotel, error)
	SetHotels(ctx context.Context, city string, hotels []domain.Hotel) error
}

type CatalogService struct {
	flights repository.FlightRepository
	hotels  repository.HotelRepository
	cities  repository.CityRepository
	cache   Cache
}

func NewCatalogService(flights repository.FlightRepository, hotels repository.HotelRepository, cities repository.CityRepository, cache Cache) *CatalogService {
	return &CatalogService{flights: flights, hotels: hotels, cities: cities, cache: cache}
}

// SearchFlights applies the optional filters with AND semantics. Only the
// unfiltered listing goes through the cache; filtered searches hit the store.
func (s *CatalogService) SearchFlights(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	if filter.Empty() && s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.flights.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter.Empty() && s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *CatalogService) SearchHotels(ctx context.Context, city string) ([]domain.Hotel, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetHotels(ctx, city); err == nil && cached != nil {
			return cached, nil
		}
	}

	hotels, err := s.hotels.Search(ctx, city)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetHotels(ctx, city, hotels)
	}
	return hotels, nil
}

func (s *CatalogService) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.hotels.GetByID(ctx, id)
}

func (s *CatalogService) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.cities.List(ctx)
}

var _ CatalogUseCase = (*CatalogService)(nil)
