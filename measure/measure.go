package measure

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for measurement handling.
var (
	// ErrMissingChest indicates that a required chest measurement is absent.
	// Chest is the one region the fit analyzer cannot estimate around.
	ErrMissingChest = errors.New("measure: required chest measurement is absent")

	// ErrOutOfRange indicates a supplied measurement is outside the ranges
	// the body-model service supports.
	ErrOutOfRange = errors.New("measure: measurement outside supported range")
)

// Heuristic estimation constants for absent garment fields.
const (
	// WaistEaseFactor scales chest ease into an estimated waist ease.
	WaistEaseFactor = 0.75

	// ShoulderEaseFactor scales chest ease into an estimated shoulder ease.
	ShoulderEaseFactor = 0.4

	// ShoulderEaseCapCm caps the estimated shoulder ease in centimeters.
	ShoulderEaseCapCm = 3.0
)

// Body holds anthropometric measurements in centimeters. Chest is required;
// all other fields are optional and use the zero value for "absent".
type Body struct {
	Height            float64
	Chest             float64
	Waist             float64
	Hips              float64
	ShoulderWidth     float64
	TorsoLength       float64
	ArmLength         float64
	Inseam            float64
	NeckCircumference float64
}

// Garment holds size-chart measurements in centimeters. Chest and Length are
// the fields every chart carries; the rest are optional and estimated
// heuristically when absent.
type Garment struct {
	Chest         float64
	Waist         float64
	Length        float64
	ShoulderWidth float64
	SleeveLength  float64
	NeckWidth     float64
	ArmholeDepth  float64
}

// bodyRange is an inclusive [min, max] bound in centimeters.
type bodyRange struct{ lo, hi float64 }

// bodyRanges mirrors the validation limits of the external body-model
// service. Only supplied (non-zero) fields are checked.
var bodyRanges = map[string]bodyRange{
	"height":            {140, 210},
	"chest":             {70, 140},
	"waist":             {60, 130},
	"hips":              {70, 140},
	"shoulderWidth":     {30, 60},
	"armLength":         {50, 90},
	"inseam":            {60, 100},
	"neckCircumference": {30, 50},
}

// Validate checks every supplied field against the supported ranges.
// Absent (zero) optional fields are skipped; an absent chest is reported as
// ErrMissingChest. Body records normally arrive pre-validated, so this is a
// guard for callers composing records by hand.
func (b Body) Validate() error {
	if b.Chest == 0 {
		return ErrMissingChest
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"height", b.Height},
		{"chest", b.Chest},
		{"waist", b.Waist},
		{"hips", b.Hips},
		{"shoulderWidth", b.ShoulderWidth},
		{"armLength", b.ArmLength},
		{"inseam", b.Inseam},
		{"neckCircumference", b.NeckCircumference},
	}

	for _, f := range fields {
		if f.value == 0 {
			continue // absent optional field
		}
		r := bodyRanges[f.name]
		if f.value < r.lo || f.value > r.hi {
			return fmt.Errorf("%w: %s=%.1f cm, supported [%.0f, %.0f]", ErrOutOfRange, f.name, f.value, r.lo, r.hi)
		}
	}

	return nil
}

// Eases holds per-region ease values (garment − body) in centimeters.
// Negative ease means the garment is nominally smaller than the body; the
// offset calculator clamps it, but fit classification keeps the sign.
type Eases struct {
	Chest    float64
	Waist    float64
	Shoulder float64
}

// ComputeEases derives per-region ease from a garment/body pair.
//
// Rules:
//  1. Chest ease requires both chest values (ErrMissingChest otherwise).
//  2. Waist ease = garment − body when both are present, else
//     WaistEaseFactor × chest ease.
//  3. Shoulder ease = garment − body when both are present, else
//     min(ShoulderEaseFactor × chest ease, ShoulderEaseCapCm).
//
// Pure and deterministic; no hidden state.
func ComputeEases(g Garment, b Body) (Eases, error) {
	// 1) Chest is mandatory on both sides.
	if b.Chest == 0 {
		return Eases{}, fmt.Errorf("%w: body", ErrMissingChest)
	}
	if g.Chest == 0 {
		return Eases{}, fmt.Errorf("%w: garment", ErrMissingChest)
	}

	e := Eases{Chest: g.Chest - b.Chest}

	// 2) Waist: measured when possible, estimated otherwise.
	if g.Waist > 0 && b.Waist > 0 {
		e.Waist = g.Waist - b.Waist
	} else {
		e.Waist = WaistEaseFactor * e.Chest
	}

	// 3) Shoulder: measured when possible, estimated (and capped) otherwise.
	if g.ShoulderWidth > 0 && b.ShoulderWidth > 0 {
		e.Shoulder = g.ShoulderWidth - b.ShoulderWidth
	} else {
		e.Shoulder = math.Min(ShoulderEaseFactor*e.Chest, ShoulderEaseCapCm)
	}

	return e, nil
}
