package handlers

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/capsule-retail/inventory-dashboard/internal/services"
)

// Quantity and price arrive as JSON numbers from the API and as strings
// from HTML forms. json.Number takes both.

func parseQuantity(n json.Number) (int, error) {
	f, err := json.Number(strings.TrimSpace(string(n))).Float64()
	if err != nil || math.IsInf(f, 0) {
		return 0, &services.ValidationError{Message: "quantity must be a number"}
	}
	if f != math.Trunc(f) {
		return 0, &services.ValidationError{Message: "quantity must be a whole number"}
	}
	if f < 0 {
		return 0, &services.ValidationError{Message: "quantity must not be negative"}
	}
	if f > math.MaxInt32 {
		return 0, &services.ValidationError{Message: "quantity is too large"}
	}
	return int(f), nil
}

func parsePrice(n json.Number) (float64, error) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, nil
	}
	f, err := json.Number(s).Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &services.ValidationError{Message: "price must be a number"}
	}
	if f < 0 {
		return 0, &services.ValidationError{Message: "price must not be negative"}
	}
	return f, nil
}
