package services

import (
	"testing"

	"github.com/Spyboss/RealTaste-sub000/entity"
	"github.com/Spyboss/RealTaste-sub000/repository"
)

func rateCard() entity.DeliverySettings {
	return entity.DeliverySettings{
		BaseFee:             180,
		PerKmFee:            40,
		MaxRangeKm:          5,
		MinOrderForDelivery: 0,
		DeliveryEnabled:     true,
	}
}

func TestFeeTierBoundaries(t *testing.T) {
	s := rateCard()
	cases := []struct {
		km      float64
		wantFee float64
	}{
		{0.4, 180},
		{1.0, 180}, // base covers the first km
		{1.1, 220},
		{1.9, 220},
		{2.0, 220}, // ceil(1.0) = 1 extra km, not 2
		{2.1, 260},
		{5.0, 340},
	}
	for _, tc := range cases {
		if fee := feeForDistance(s, tc.km); fee != tc.wantFee {
			t.Errorf("%.1f km: fee = %v, want %v", tc.km, fee, tc.wantFee)
		}
	}

	// same tiers through the full calculation, off the exact boundaries
	calc := CalculateDeliveryFee(s, testRestaurant, pointAtKm(4.95))
	if !calc.IsWithinRange || calc.DeliveryFee != 340 { // 180 + ceil(3.95)*40
		t.Errorf("4.95 km: got %+v, want in-range fee 340", calc)
	}
}

func TestFeeOutOfRange(t *testing.T) {
	s := rateCard()
	calc := CalculateDeliveryFee(s, testRestaurant, pointAtKm(5.1))
	if calc.IsWithinRange {
		t.Fatal("5.1 km should be out of a 5 km range")
	}
	if calc.DeliveryFee != 0 || calc.EstimatedMinutes != 0 {
		t.Errorf("out of range must zero fee and ETA, got %+v", calc)
	}
	if calc.DistanceKm != 5.1 {
		t.Errorf("distance still reported: got %v, want 5.1", calc.DistanceKm)
	}
}

func TestFeeDeliveryDisabled(t *testing.T) {
	s := rateCard()
	s.DeliveryEnabled = false
	calc := CalculateDeliveryFee(s, testRestaurant, pointAtKm(2))
	if calc != (DeliveryCalculation{}) {
		t.Errorf("disabled delivery must return zero calc, got %+v", calc)
	}
}

func TestFeeEndToEndScenario(t *testing.T) {
	// restaurant at (6.261449, 80.906462), destination 2.3 km out
	calc := CalculateDeliveryFee(rateCard(), testRestaurant, pointAtKm(2.3))
	if !calc.IsWithinRange {
		t.Fatal("2.3 km should be in range")
	}
	if calc.DeliveryFee != 260 { // 180 + ceil(1.3)*40
		t.Errorf("fee = %v, want 260", calc.DeliveryFee)
	}
	if calc.EstimatedMinutes != 22 { // ceil(2.3*5) + 10
		t.Errorf("eta = %v, want 22", calc.EstimatedMinutes)
	}
	if calc.DistanceKm != 2.3 {
		t.Errorf("distance = %v, want 2.3", calc.DistanceKm)
	}
}

func TestFeeIdempotent(t *testing.T) {
	s := rateCard()
	dest := pointAtKm(3.7)
	first := CalculateDeliveryFee(s, testRestaurant, dest)
	second := CalculateDeliveryFee(s, testRestaurant, dest)
	if first != second {
		t.Errorf("same inputs gave different results: %+v vs %+v", first, second)
	}
}

func TestFeeMonotonic(t *testing.T) {
	s := rateCard()
	prev := 0.0
	for km := 0.1; km <= 5.0; km += 0.1 {
		fee := feeForDistance(s, km)
		if fee < prev {
			t.Fatalf("fee decreased at %.1f km: %v < %v", km, fee, prev)
		}
		prev = fee
	}
}

func TestStandardFee(t *testing.T) {
	calc := StandardFee(rateCard())
	if !calc.IsWithinRange {
		t.Fatal("3 km reference should be in range")
	}
	if calc.DeliveryFee != 260 { // 180 + ceil(2)*40
		t.Errorf("fee = %v, want 260", calc.DeliveryFee)
	}
	if calc.EstimatedMinutes != 25 { // ceil(15) + 10
		t.Errorf("eta = %v, want 25", calc.EstimatedMinutes)
	}
}

func TestStandardFeeBeyondRange(t *testing.T) {
	s := rateCard()
	s.MaxRangeKm = 2.5 // shorter than the 3 km reference

	calc := StandardFee(s)
	if calc.IsWithinRange {
		t.Fatal("reference distance beyond max range must be out of range")
	}
	if calc.DistanceKm != 3.0 {
		t.Errorf("distance = %v, want 3.0", calc.DistanceKm)
	}
	if calc.DeliveryFee != 0 || calc.EstimatedMinutes != 0 {
		t.Errorf("out-of-range quote must zero fee and eta, got fee=%v eta=%v",
			calc.DeliveryFee, calc.EstimatedMinutes)
	}
}

func TestSettingsCacheInvalidation(t *testing.T) {
	db := newTestDB(t)
	db.Create(&entity.DeliverySettings{
		BaseFee: 180, PerKmFee: 40, MaxRangeKm: 5, DeliveryEnabled: true,
	})
	svc := NewDeliveryService(repository.NewSettingsRepository(db), testRestaurant)

	before, err := svc.Quote(pointAtKm(2.3))
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if before.DeliveryFee != 260 {
		t.Fatalf("fee = %v, want 260", before.DeliveryFee)
	}

	if _, err := svc.UpdateSettings(map[string]any{"base_fee": 300.0}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	// the very next quote must see the new rate card
	after, err := svc.Quote(pointAtKm(2.3))
	if err != nil {
		t.Fatalf("quote after update: %v", err)
	}
	if after.DeliveryFee != 380 { // 300 + 2*40
		t.Errorf("fee after update = %v, want 380", after.DeliveryFee)
	}
}
