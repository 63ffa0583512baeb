package fitment

import (
	"fmt"
	"strings"

	"github.com/vponomar/fitweave/measure"
)

// region pairs a metric with its report wording, in canonical order.
type region struct {
	name   string
	metric *Metric
}

// Analyze compares garment and body measurements region by region and
// produces a fit report.
//
// Regions:
//
//   - chest:    always computed; absent on either side → ErrMissingChest.
//   - waist:    computed when both garment and body values are present.
//   - shoulder: computed when both are present.
//   - length:   garment length vs body torso length, when both are present.
//
// The overall status is the worst per-region status (extremes dominate,
// moderates beat perfect); severity ties resolve to the earliest region in
// the order above. The recommendation string concatenates per-region issue
// phrases for too_tight/too_loose/tight statuses, or confirms the fit when
// there are no issues.
//
// Pure and deterministic.
func Analyze(g measure.Garment, b measure.Body) (*Report, error) {
	// 1) Chest is mandatory on both sides.
	if b.Chest == 0 {
		return nil, fmt.Errorf("%w: body (fit analysis)", measure.ErrMissingChest)
	}
	if g.Chest == 0 {
		return nil, fmt.Errorf("%w: garment (fit analysis)", measure.ErrMissingChest)
	}

	rep := &Report{Chest: newMetric(g.Chest, b.Chest)}

	// 2) Optional regions: computed only when measured on both sides.
	//    Absence here is degraded mode, never an error.
	if g.Waist > 0 && b.Waist > 0 {
		rep.Waist = newMetric(g.Waist, b.Waist)
	}
	if g.ShoulderWidth > 0 && b.ShoulderWidth > 0 {
		rep.Shoulder = newMetric(g.ShoulderWidth, b.ShoulderWidth)
	}
	if g.Length > 0 && b.TorsoLength > 0 {
		rep.Length = newMetric(g.Length, b.TorsoLength)
	}

	// 3) Overall = worst severity, first region winning severity ties.
	regions := rep.regions()
	rep.Overall = regions[0].metric.Status
	for _, r := range regions[1:] {
		if r.metric.Status.severity() > rep.Overall.severity() {
			rep.Overall = r.metric.Status
		}
	}

	// 4) Assemble the recommendation from per-region issue phrases.
	rep.Recommendation = recommendation(regions)

	return rep, nil
}

// newMetric computes difference, percentage and classification for one region.
func newMetric(garment, body float64) *Metric {
	diff := garment - body
	pct := 100 * diff / body

	return &Metric{
		Garment:    garment,
		Body:       body,
		Difference: diff,
		Percent:    pct,
		Status:     Classify(pct),
	}
}

// regions lists the computed metrics in canonical order (chest always first).
func (r *Report) regions() []region {
	out := []region{{"chest", r.Chest}}
	if r.Waist != nil {
		out = append(out, region{"waist", r.Waist})
	}
	if r.Shoulder != nil {
		out = append(out, region{"shoulder", r.Shoulder})
	}
	if r.Length != nil {
		out = append(out, region{"length", r.Length})
	}

	return out
}

// recommendation builds the human-readable summary. Issue phrases are emitted
// only for too_tight, too_loose and tight regions; loose and perfect regions
// are acceptable outcomes and stay silent.
func recommendation(regions []region) string {
	var issues []string
	for _, r := range regions {
		switch r.metric.Status {
		case TooTight:
			issues = append(issues, fmt.Sprintf("%s is too tight - consider sizing up", r.name))
		case TooLoose:
			issues = append(issues, fmt.Sprintf("%s is too loose - consider sizing down", r.name))
		case Tight:
			issues = append(issues, fmt.Sprintf("%s is snug - size up for a relaxed fit", r.name))
		}
	}

	if len(issues) == 0 {
		return "Good fit for your measurements."
	}

	return strings.Join(issues, "; ")
}
