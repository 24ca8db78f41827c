package dto

import (
	"encoding/json"
	"testing"
)

func TestNumberAcceptsNumbersAndNumericStrings(t *testing.T) {
	var req CreateClassRequest
	payload := `{"title":"Yoga","available_seats":"10","price":"20"}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	seats, ok := req.AvailableSeats.Int32()
	if !ok || seats != 10 {
		t.Fatalf("expected seats 10, got %d (ok=%v)", seats, ok)
	}
	if req.Price.Float64() != 20 {
		t.Fatalf("expected price 20, got %v", req.Price.Float64())
	}

	payload = `{"title":"Yoga","available_seats":10,"price":20.5}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal plain numbers: %v", err)
	}
	if req.Price.Float64() != 20.5 {
		t.Fatalf("expected price 20.5, got %v", req.Price.Float64())
	}
}

func TestNumberRejectsNonNumericInput(t *testing.T) {
	var req CreateClassRequest
	for _, payload := range []string{
		`{"available_seats":"ten","price":20}`,
		`{"available_seats":"","price":20}`,
		`{"available_seats":null,"price":20}`,
		`{"available_seats":true,"price":20}`,
	} {
		if err := json.Unmarshal([]byte(payload), &req); err == nil {
			t.Fatalf("expected unmarshal error for %s", payload)
		}
	}
}

func TestNumberInt32RejectsFractions(t *testing.T) {
	n := Number(10.5)
	if _, ok := n.Int32(); ok {
		t.Fatal("expected fractional seats to be rejected")
	}
}
