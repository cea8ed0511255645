// Package roughcalc holds simple models for preliminary design.
package roughcalc

import (
	"fmt"
	"math"
)

// CableStayed is the simple model of a cable-stayed bridge deck: each cable
// carries the deck load over its tributary length.
type CableStayed struct {
	L1 float64 // tributary length of a cable (m)
}

// NewCableStayed returns the model for a tributary length l1
func NewCableStayed(l1 float64) (*CableStayed, error) {
	if l1 <= 0 || math.IsNaN(l1) {
		return nil, fmt.Errorf("tributary length must be positive: %g m", l1)
	}
	return &CableStayed{L1: l1}, nil
}

func checkAngle(theta float64) error {
	if !(theta > 0 && theta <= math.Pi/2) {
		return fmt.Errorf("cable angle must be in (0, pi/2]: %g rad", theta)
	}
	return nil
}

// NCable returns the axial force in a cable for the deck load q (N/m) and the
// angle theta of the cable with the deck (rad)
func (c *CableStayed) NCable(q, theta float64) (float64, error) {
	if err := checkAngle(theta); err != nil {
		return 0, err
	}
	return q * c.L1 / math.Sin(theta), nil
}

// VCable returns the vertical reaction of a cable at the tower
func (c *CableStayed) VCable(q float64) float64 {
	return q * c.L1
}

// HCable returns the horizontal reaction of a cable at the tower
func (c *CableStayed) HCable(q, theta float64) (float64, error) {
	if err := checkAngle(theta); err != nil {
		return 0, err
	}
	return q * c.L1 / math.Tan(theta), nil
}
