// Package drape defines the fabric enumeration, ease and band carriers, and
// the clearance constants shared by the offset calculator and the passes.
package drape

import "errors"

// Sentinel errors for draping stages.
var (
	// ErrNilSurface indicates a raycasting pass received no body surface.
	ErrNilSurface = errors.New("drape: body surface is nil")

	// ErrBadBand indicates a torso band with zero or inverted extent.
	ErrBadBand = errors.New("drape: torso band must have positive extent")
)

// Clearance and shaping constants, in meters unless noted.
const (
	// MinClearance is the smallest allowed garment-body gap after inflation.
	MinClearance = 0.003

	// MaxClearance caps the inflation offset.
	MaxClearance = 0.05

	// LooseThreshold separates tight garments (no boxiness shaping) from
	// loose ones (boxiness-shaped).
	LooseThreshold = 0.01

	// BoxinessBase and BoxinessSpan define the loose-garment multiplier
	// 0.6 + 0.4 × radialPosition.
	BoxinessBase = 0.6
	BoxinessSpan = 0.4

	// StretchRange is the inward hit distance below which a stretch zone
	// pulls the garment toward the body.
	StretchRange = 0.02

	// StretchTorso and StretchShoulder are the stretch factors for the
	// torso band [0.5, 0.85) and the shoulder region (≥ 0.85).
	StretchTorso    = 0.7
	StretchShoulder = 0.5

	// ShoulderBandT splits torso from shoulder for stretch factors, in
	// normalized body height.
	ShoulderBandT = 0.85

	// SeamShoulderRange is the vertical distance from the shoulder line
	// within which seam tension applies.
	SeamShoulderRange = 0.05

	// SeamShoulderScale contracts shoulder-seam vertices in the horizontal
	// plane.
	SeamShoulderScale = 0.95

	// SeamSideAzimuth is the angular window (radians) around the ±90°
	// side-seam azimuth.
	SeamSideAzimuth = 0.3

	// SeamSidePull is the fixed inward displacement at side seams.
	SeamSidePull = 0.003

	// WrinkleNear / WrinkleFar grade the wrinkle factor by raycast distance.
	WrinkleNear = 0.03
	WrinkleFar  = 0.06

	// WrinkleAmplitude scales the tangential wrinkle perturbation.
	WrinkleAmplitude = 0.004
)

// Fabric is a closed tagged variant selecting the garment's weight class.
type Fabric int

const (
	// Light fabrics (jersey, poplin) drop the least.
	Light Fabric = iota

	// Medium fabrics (twill, flannel).
	Medium

	// Heavy fabrics (denim, canvas, wool coating).
	Heavy
)

// fabricWeights is the per-fabric weight factor lookup table.
var fabricWeights = [...]float64{
	Light:  0.008,
	Medium: 0.015,
	Heavy:  0.025,
}

// WeightFactor returns the gravity-drop coefficient of the fabric.
func (f Fabric) WeightFactor() float64 {
	if f < Light || f > Heavy {
		return fabricWeights[Medium]
	}

	return fabricWeights[f]
}

// String names the fabric class.
func (f Fabric) String() string {
	switch f {
	case Light:
		return "light"
	case Heavy:
		return "heavy"
	default:
		return "medium"
	}
}

// Eases carries per-region ease values in meters (centimeters / 100).
type Eases struct {
	Chest    float64
	Waist    float64
	Shoulder float64
}

// Band is the torso band in world space: BottomY at the hem (u=0), TopY at
// the shoulder (u=1).
type Band struct {
	BottomY float64
	TopY    float64
}
