package greeks

import (
	"math"

	"github.com/xhhuango/json"

	"github.com/bcdannyboy/bsmgreeks/numeric"
)

// Report holds a price and every Greek for one option. Fields that were not
// computed, or whose computation failed, are NaN.
type Report struct {
	Price   float64
	Delta   float64
	Vega    float64
	Theta   float64
	Rho     float64
	Lambda  float64
	Epsilon float64

	Gamma   float64
	Vanna   float64
	Charm   float64
	Volga   float64
	Veta    float64
	Vera    float64
	DualRho float64

	Speed      float64
	Zomma      float64
	Color      float64
	Ultima     float64
	DvannaDvol float64

	Snap    float64
	ZedZeta float64
	Crackle float64
	Pop     float64

	Jounce   float64
	Quintema float64
	Mixed5th float64

	Pounce   float64
	Hexema   float64
	Mixed6th float64
}

// NewReport returns a Report with every field set to NaN.
func NewReport() Report {
	nan := math.NaN()
	return Report{
		Price: nan, Delta: nan, Vega: nan, Theta: nan, Rho: nan, Lambda: nan, Epsilon: nan,
		Gamma: nan, Vanna: nan, Charm: nan, Volga: nan, Veta: nan, Vera: nan, DualRho: nan,
		Speed: nan, Zomma: nan, Color: nan, Ultima: nan, DvannaDvol: nan,
		Snap: nan, ZedZeta: nan, Crackle: nan, Pop: nan,
		Jounce: nan, Quintema: nan, Mixed5th: nan,
		Pounce: nan, Hexema: nan, Mixed6th: nan,
	}
}

// Field is a named Report value.
type Field struct {
	Name  string
	Value float64
}

// Fields lists the report values in declaration order, keyed by their JSON names.
func (g Report) Fields() []Field {
	return []Field{
		{"price", g.Price}, {"delta", g.Delta}, {"vega", g.Vega}, {"theta", g.Theta},
		{"rho", g.Rho}, {"lambda", g.Lambda}, {"epsilon", g.Epsilon},
		{"gamma", g.Gamma}, {"vanna", g.Vanna}, {"charm", g.Charm}, {"volga", g.Volga},
		{"veta", g.Veta}, {"vera", g.Vera}, {"dual_rho", g.DualRho},
		{"speed", g.Speed}, {"zomma", g.Zomma}, {"color", g.Color}, {"ultima", g.Ultima},
		{"dvanna_dvol", g.DvannaDvol},
		{"snap", g.Snap}, {"zed_zeta", g.ZedZeta}, {"crackle", g.Crackle}, {"pop", g.Pop},
		{"jounce", g.Jounce}, {"quintema", g.Quintema}, {"mixed5th", g.Mixed5th},
		{"pounce", g.Pounce}, {"hexema", g.Hexema}, {"mixed6th", g.Mixed6th},
	}
}

type reportJSON struct {
	Price   *float64 `json:"price"`
	Delta   *float64 `json:"delta"`
	Vega    *float64 `json:"vega"`
	Theta   *float64 `json:"theta"`
	Rho     *float64 `json:"rho"`
	Lambda  *float64 `json:"lambda"`
	Epsilon *float64 `json:"epsilon"`

	Gamma   *float64 `json:"gamma"`
	Vanna   *float64 `json:"vanna"`
	Charm   *float64 `json:"charm"`
	Volga   *float64 `json:"volga"`
	Veta    *float64 `json:"veta"`
	Vera    *float64 `json:"vera"`
	DualRho *float64 `json:"dual_rho"`

	Speed      *float64 `json:"speed"`
	Zomma      *float64 `json:"zomma"`
	Color      *float64 `json:"color"`
	Ultima     *float64 `json:"ultima"`
	DvannaDvol *float64 `json:"dvanna_dvol"`

	Snap    *float64 `json:"snap"`
	ZedZeta *float64 `json:"zed_zeta"`
	Crackle *float64 `json:"crackle"`
	Pop     *float64 `json:"pop"`

	Jounce   *float64 `json:"jounce"`
	Quintema *float64 `json:"quintema"`
	Mixed5th *float64 `json:"mixed5th"`

	Pounce   *float64 `json:"pounce"`
	Hexema   *float64 `json:"hexema"`
	Mixed6th *float64 `json:"mixed6th"`
}

// finite maps non-finite values to nil so they encode as null.
func finite(v float64) *float64 {
	if !numeric.IsValid(v) {
		return nil
	}
	return &v
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// MarshalJSON encodes the report with snake_case keys. NaN and infinite
// values become null.
func (g Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		Price: finite(g.Price), Delta: finite(g.Delta), Vega: finite(g.Vega), Theta: finite(g.Theta),
		Rho: finite(g.Rho), Lambda: finite(g.Lambda), Epsilon: finite(g.Epsilon),
		Gamma: finite(g.Gamma), Vanna: finite(g.Vanna), Charm: finite(g.Charm), Volga: finite(g.Volga),
		Veta: finite(g.Veta), Vera: finite(g.Vera), DualRho: finite(g.DualRho),
		Speed: finite(g.Speed), Zomma: finite(g.Zomma), Color: finite(g.Color), Ultima: finite(g.Ultima),
		DvannaDvol: finite(g.DvannaDvol),
		Snap: finite(g.Snap), ZedZeta: finite(g.ZedZeta), Crackle: finite(g.Crackle), Pop: finite(g.Pop),
		Jounce: finite(g.Jounce), Quintema: finite(g.Quintema), Mixed5th: finite(g.Mixed5th),
		Pounce: finite(g.Pounce), Hexema: finite(g.Hexema), Mixed6th: finite(g.Mixed6th),
	})
}

// UnmarshalJSON decodes a report produced by MarshalJSON. Missing and null
// fields become NaN.
func (g *Report) UnmarshalJSON(data []byte) error {
	var raw reportJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*g = Report{
		Price: orNaN(raw.Price), Delta: orNaN(raw.Delta), Vega: orNaN(raw.Vega), Theta: orNaN(raw.Theta),
		Rho: orNaN(raw.Rho), Lambda: orNaN(raw.Lambda), Epsilon: orNaN(raw.Epsilon),
		Gamma: orNaN(raw.Gamma), Vanna: orNaN(raw.Vanna), Charm: orNaN(raw.Charm), Volga: orNaN(raw.Volga),
		Veta: orNaN(raw.Veta), Vera: orNaN(raw.Vera), DualRho: orNaN(raw.DualRho),
		Speed: orNaN(raw.Speed), Zomma: orNaN(raw.Zomma), Color: orNaN(raw.Color), Ultima: orNaN(raw.Ultima),
		DvannaDvol: orNaN(raw.DvannaDvol),
		Snap: orNaN(raw.Snap), ZedZeta: orNaN(raw.ZedZeta), Crackle: orNaN(raw.Crackle), Pop: orNaN(raw.Pop),
		Jounce: orNaN(raw.Jounce), Quintema: orNaN(raw.Quintema), Mixed5th: orNaN(raw.Mixed5th),
		Pounce: orNaN(raw.Pounce), Hexema: orNaN(raw.Hexema), Mixed6th: orNaN(raw.Mixed6th),
	}
	return nil
}
