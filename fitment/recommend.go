package fitment

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"gonum.org/v1/gonum/floats"

	"github.com/vponomar/fitweave/measure"
)

// MaxAlternatives caps how many runner-up sizes a recommendation carries.
const MaxAlternatives = 2

// Scored is one evaluated size candidate.
type Scored struct {
	// Label is the chart label of the candidate.
	Label string

	// Garment is the effective record the candidate was scored with:
	// the caller's values, with absent waist/shoulder materialized from
	// the chest-ease heuristics. Detached from the caller's chart.
	Garment measure.Garment

	// Score is 2×s(overall) + s(chest) + s(waist, if present) +
	// s(shoulder, if present).
	Score float64

	// Report is the full fit analysis of the candidate.
	Report *Report
}

// Recommendation is the outcome of scoring a size chart against a body.
type Recommendation struct {
	// Best is the maximum-score candidate (first wins ties).
	Best Scored

	// Alternatives holds up to MaxAlternatives runner-ups with positive
	// score and a non-extreme overall status, displaced previous bests
	// first.
	Alternatives []Scored
}

// Recommend evaluates every chart candidate against the body and picks the
// best-scoring size with ranked alternatives.
//
// Steps:
//  1. Deep-copy the chart: the estimation step below writes materialized
//     fields into the candidate records, and the caller-owned chart must
//     stay untouched.
//  2. Materialize heuristic estimates onto each copied candidate: a garment
//     with no waist (or shoulder) value, fitted against a body that has one,
//     gets the chest-ease estimate written into the record, so the waist and
//     shoulder regions participate in scoring instead of being skipped.
//  3. Analyze and score every effective candidate in chart order.
//  4. Best = argmax score (first index on ties).
//  5. Alternatives: candidates with score > 0 whose overall status is neither
//     too_tight nor too_loose; previous bests displaced during the scan are
//     preferred (most recently displaced first), then remaining candidates
//     in chart order. At most MaxAlternatives are kept.
//
// Pure and deterministic.
func Recommend(chart []Size, b measure.Body) (*Recommendation, error) {
	if len(chart) == 0 {
		return nil, ErrEmptyChart
	}

	// 1) Detach from caller-owned memory before mutating any record.
	var sizes []Size
	if err := deepcopy.Copy(&sizes, chart); err != nil {
		return nil, fmt.Errorf("fitment: copying size chart: %w", err)
	}

	// 2+3) Estimate absent regions, then score every effective candidate.
	scored := make([]Scored, len(sizes))
	scores := make([]float64, len(sizes))
	for i := range sizes {
		g := &sizes[i].Garment

		eases, err := measure.ComputeEases(*g, b)
		if err != nil {
			return nil, fmt.Errorf("fitment: size %q: %w", sizes[i].Label, err)
		}
		if g.Waist == 0 && b.Waist > 0 {
			g.Waist = b.Waist + eases.Waist
		}
		if g.ShoulderWidth == 0 && b.ShoulderWidth > 0 {
			g.ShoulderWidth = b.ShoulderWidth + eases.Shoulder
		}

		rep, err := Analyze(*g, b)
		if err != nil {
			return nil, fmt.Errorf("fitment: size %q: %w", sizes[i].Label, err)
		}

		total := 2 * rep.Overall.Score()
		total += rep.Chest.Status.Score()
		if rep.Waist != nil {
			total += rep.Waist.Status.Score()
		}
		if rep.Shoulder != nil {
			total += rep.Shoulder.Status.Score()
		}

		scored[i] = Scored{Label: sizes[i].Label, Garment: *g, Score: total, Report: rep}
		scores[i] = total
	}

	// 4) argmax; floats.MaxIdx returns the first maximal index, which keeps
	//    ties deterministic in chart order.
	best := floats.MaxIdx(scores)

	// 5) Track which candidates held the lead and were displaced, most
	//    recently displaced first. They are the preferred alternatives.
	var displaced []int
	lead := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[lead] {
			displaced = append([]int{lead}, displaced...)
			lead = i
		}
	}

	rec := &Recommendation{Best: scored[best]}

	appendAlt := func(i int) {
		if len(rec.Alternatives) == MaxAlternatives || i == best {
			return
		}
		c := scored[i]
		if c.Score <= 0 || c.Report.Overall.Extreme() {
			return
		}
		for _, a := range rec.Alternatives {
			if a.Label == c.Label {
				return
			}
		}
		rec.Alternatives = append(rec.Alternatives, c)
	}

	for _, i := range displaced {
		appendAlt(i)
	}
	for i := range scored {
		appendAlt(i)
	}

	return rec, nil
}
