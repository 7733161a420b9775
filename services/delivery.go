package services

import (
	"math"
	"sync"

	"github.com/Spyboss/RealTaste-sub000/entity"
	"github.com/Spyboss/RealTaste-sub000/repository"
)

// DeliveryCalculation is derived per request, never persisted.
type DeliveryCalculation struct {
	IsWithinRange    bool    `json:"isWithinRange"`
	DistanceKm       float64 `json:"distanceKm"`
	DeliveryFee      float64 `json:"deliveryFee"`
	EstimatedMinutes int     `json:"estimatedMinutes"`
}

// standardQuoteKm is the reference distance used when the caller has no
// coordinates yet (e.g. a fee preview before the address is typed in).
const standardQuoteKm = 3.0

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// feeForDistance applies the rate card: BaseFee covers the first km, every
// additional km (partial kms rounded up, ceil(d-1)) is billed at PerKmFee.
// Exactly 2.0 km therefore bills one extra km, not two.
func feeForDistance(s entity.DeliverySettings, d float64) float64 {
	fee := s.BaseFee
	if d > 1 {
		fee += math.Ceil(d-1) * s.PerKmFee
	}
	return round2(fee)
}

func etaForDistance(d float64) int {
	return int(math.Ceil(d*5)) + 10 // 5 min/km + 10 min overhead
}

// CalculateDeliveryFee quotes a delivery from origin to destination under the
// given settings. Out-of-range destinations still report the distance, with
// fee and ETA zeroed.
func CalculateDeliveryFee(s entity.DeliverySettings, origin, destination Coordinate) DeliveryCalculation {
	if !s.DeliveryEnabled {
		return DeliveryCalculation{}
	}

	d := DistanceKm(origin, destination)
	if d > s.MaxRangeKm {
		return DeliveryCalculation{IsWithinRange: false, DistanceKm: round2(d)}
	}

	return DeliveryCalculation{
		IsWithinRange:    true,
		DistanceKm:       round2(d),
		DeliveryFee:      feeForDistance(s, d),
		EstimatedMinutes: etaForDistance(d),
	}
}

// StandardFee evaluates the same rate card at the fixed reference distance.
// A rate card whose range does not reach the reference distance quotes like
// any other out-of-range destination: distance only, fee and ETA zeroed.
func StandardFee(s entity.DeliverySettings) DeliveryCalculation {
	if !s.DeliveryEnabled {
		return DeliveryCalculation{}
	}
	if standardQuoteKm > s.MaxRangeKm {
		return DeliveryCalculation{IsWithinRange: false, DistanceKm: standardQuoteKm}
	}
	return DeliveryCalculation{
		IsWithinRange:    true,
		DistanceKm:       standardQuoteKm,
		DeliveryFee:      feeForDistance(s, standardQuoteKm),
		EstimatedMinutes: etaForDistance(standardQuoteKm),
	}
}

// DeliveryService serves fee quotes against the restaurant's fixed coordinate
// and caches the settings row. Update invalidates the cache before returning,
// so the next quote always sees fresh settings.
type DeliveryService struct {
	Repo       *repository.SettingsRepository
	Restaurant Coordinate

	mu     sync.RWMutex
	cached *entity.DeliverySettings
}

func NewDeliveryService(repo *repository.SettingsRepository, restaurant Coordinate) *DeliveryService {
	return &DeliveryService{Repo: repo, Restaurant: restaurant}
}

func (s *DeliveryService) Settings() (entity.DeliverySettings, error) {
	s.mu.RLock()
	if s.cached != nil {
		out := *s.cached
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()

	loaded, err := s.Repo.Get()
	if err != nil {
		return entity.DeliverySettings{}, err
	}

	s.mu.Lock()
	s.cached = loaded
	s.mu.Unlock()
	return *loaded, nil
}

func (s *DeliveryService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *DeliveryService) UpdateSettings(patch map[string]any) (entity.DeliverySettings, error) {
	if err := s.Repo.Update(patch); err != nil {
		return entity.DeliverySettings{}, err
	}
	s.Invalidate()
	return s.Settings()
}

// Quote prices a delivery to the given destination from the restaurant.
func (s *DeliveryService) Quote(destination Coordinate) (DeliveryCalculation, error) {
	if !destination.Valid() {
		return DeliveryCalculation{}, ErrInvalidCoordinate
	}
	settings, err := s.Settings()
	if err != nil {
		return DeliveryCalculation{}, err
	}
	return CalculateDeliveryFee(settings, s.Restaurant, destination), nil
}

// StandardQuote prices the reference-distance delivery.
func (s *DeliveryService) StandardQuote() (DeliveryCalculation, error) {
	settings, err := s.Settings()
	if err != nil {
		return DeliveryCalculation{}, err
	}
	return StandardFee(settings), nil
}
