package fitting_test

import (
	"fmt"

	"github.com/vponomar/fitweave/fitting"
	"github.com/vponomar/fitweave/measure"
)

// ExampleFit runs the default pipeline for a t-shirt on a synthetic torso.
func ExampleFit() {
	body := cylinderBody()

	bm := measure.Body{Height: 175, Chest: 95, Waist: 80, ShoulderWidth: 45}
	gm := measure.Garment{Chest: 102, Length: 70}

	res, err := fitting.Fit(body, bm, gm)
	if err != nil {
		fmt.Println("fit failed:", err)

		return
	}

	fmt.Println("overall:", res.Report.Overall)
	fmt.Println("chest status:", res.Report.Chest.Status)
	fmt.Println("garment draped:", len(res.Garment.Triangles) > 0)

	// Output:
	// overall: perfect
	// chest status: perfect
	// garment draped: true
}
