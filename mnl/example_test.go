package mnl_test

import (
	"fmt"

	"github.com/katalvlaran/lvchoice/field"
	"github.com/katalvlaran/lvchoice/mnl"
)

// ExampleMultinomial splits one unit between three modes and reports the
// logsum accessibility of the choice set.
func ExampleMultinomial() {
	drive, _ := field.FromVector([]float64{0.5})
	bus, _ := field.FromVector([]float64{-0.2})
	bike, _ := field.FromVector([]float64{0.1})

	opts := mnl.DefaultOptions()
	opts.Logsum = true
	res, err := mnl.Multinomial(map[string]*field.Field{"drive": drive, "bus": bus, "bike": bike}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, mode := range []string{"drive", "bus", "bike"} {
		p, _ := res.Probabilities[mode].At(0)
		fmt.Printf("%s=%.4f\n", mode, p)
	}
	ls, _ := res.Logsum.At(0)
	fmt.Printf("logsum=%.4f\n", ls)
	// Output:
	// drive=0.4615
	// bus=0.2292
	// bike=0.3093
	// logsum=1.2733
}

// ExamplePivotPoint raises transit utility by 0.5 against a 60/40 base split.
func ExamplePivotPoint() {
	one := func(v float64) *field.Field {
		f, _ := field.FromVector([]float64{v})

		return f
	}
	base := map[string]*field.Field{"auto": one(1), "transit": one(0)}
	upd := map[string]*field.Field{"auto": one(1), "transit": one(0.5)}
	po := map[string]*field.Field{"auto": one(0.6), "transit": one(0.4)}

	out, err := mnl.PivotPoint(base, upd, po)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	a, _ := out["auto"].At(0)
	tr, _ := out["transit"].At(0)
	fmt.Printf("auto=%.4f transit=%.4f\n", a, tr)
	// Output:
	// auto=0.4764 transit=0.5236
}
