package model

import "math"

const (
	cmPerFoot  = 30.48
	cmPerInch  = 2.54
	lbsPerKilo = 2.20462
)

// Height is measured in decimetres, as reported by the API.
type Height int

func (h Height) Centimetres() int {
	return int(h) * 10
}

// FeetInches splits the height into whole feet and rounded inches. The
// inches are rounded independently, so a remainder close to a foot reads 12.
func (h Height) FeetInches() (int, int) {
	cm := float64(h.Centimetres())
	feet := math.Floor(cm / cmPerFoot)
	inches := math.Round((cm - feet*cmPerFoot) / cmPerInch)
	return int(feet), int(inches)
}

// Weight is measured in hectograms, as reported by the API.
type Weight int

func (w Weight) Kilograms() float64 {
	return float64(w) / 10
}

func (w Weight) Pounds() int {
	return int(math.Round(w.Kilograms() * lbsPerKilo))
}
