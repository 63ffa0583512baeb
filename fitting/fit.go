package fitting

import (
	"fmt"

	"github.com/vponomar/fitweave/collide"
	"github.com/vponomar/fitweave/drape"
	"github.com/vponomar/fitweave/fitment"
	"github.com/vponomar/fitweave/measure"
	"github.com/vponomar/fitweave/mesh"
	"github.com/vponomar/fitweave/region"
	"github.com/vponomar/fitweave/smooth"
)

// cmToM converts measurement-domain centimeters to mesh-domain meters.
const cmToM = 1.0 / 100.0

// Fit runs the complete pipeline for one garment/body pair and returns the
// draped garment mesh together with the measurement-level fit report.
//
// Stages, in order:
//  1. Validate the body measurements and analyze the fit (report).
//  2. Derive per-region eases, estimating absent regions.
//  3. Select the garment-coverage region of the body mesh.
//  4. Inflate it by the blended ease offsets.
//  5. Aesthetic passes: stretch, weight, seams, wrinkles (toggleable).
//  6. Resolve collisions against the body surface.
//  7. Laplacian smoothing (toggleable).
//
// The body mesh is never mutated; all errors wrap their package sentinels.
func Fit(body *mesh.Mesh, bm measure.Body, gm measure.Garment, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) measurement-level analysis
	if err := bm.Validate(); err != nil {
		return nil, fmt.Errorf("fitting: %w", err)
	}
	report, err := fitment.Analyze(gm, bm)
	if err != nil {
		return nil, fmt.Errorf("fitting: %w", err)
	}

	// 2) per-region eases, centimeters
	eases, err := measure.ComputeEases(gm, bm)
	if err != nil {
		return nil, fmt.Errorf("fitting: %w", err)
	}

	// 3) garment-coverage region of the body
	regionOpts := cfg.Region
	if gm.SleeveLength > 0 {
		regionOpts = append(regionOpts, region.WithSleeveLength(gm.SleeveLength*cmToM))
	}
	sub, err := region.Select(body, regionOpts...)
	if err != nil {
		return nil, fmt.Errorf("fitting: %w", err)
	}

	surf := cfg.Surface
	if surf == nil {
		if surf, err = collide.NewBVH(body); err != nil {
			return nil, fmt.Errorf("fitting: %w", err)
		}
	}

	// 4) inflation
	d, err := drape.NewDraper(sub.Mesh, sub.Bounds,
		drape.Band{BottomY: sub.BandBottomY, TopY: sub.BandTopY}, surf)
	if err != nil {
		return nil, fmt.Errorf("fitting: %w", err)
	}
	if err = d.Offset(drape.Eases{
		Chest:    eases.Chest * cmToM,
		Waist:    eases.Waist * cmToM,
		Shoulder: eases.Shoulder * cmToM,
	}); err != nil {
		return nil, fmt.Errorf("fitting: %w", err)
	}

	// 5) aesthetic passes
	if cfg.Effects {
		if err = d.Stretch(); err != nil {
			return nil, fmt.Errorf("fitting: %w", err)
		}
		if err = d.Weight(cfg.Fabric); err != nil {
			return nil, fmt.Errorf("fitting: %w", err)
		}
		if err = d.Seams(sub.ShoulderY); err != nil {
			return nil, fmt.Errorf("fitting: %w", err)
		}
		if err = d.Wrinkles(); err != nil {
			return nil, fmt.Errorf("fitting: %w", err)
		}
	}

	// 6) final clearance
	if err = collide.Resolve(sub.Mesh, surf, collide.WithMinClearance(cfg.MinClearance)); err != nil {
		return nil, fmt.Errorf("fitting: %w", err)
	}

	// 7) artifact damping
	if cfg.Smoothing {
		if err = smooth.Laplacian(sub.Mesh, cfg.Smooth...); err != nil {
			return nil, fmt.Errorf("fitting: %w", err)
		}
	}

	return &Result{Garment: sub.Mesh, Report: report}, nil
}
