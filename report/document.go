package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/haulroute/explore"
	"github.com/katalvlaran/haulroute/scenario"
)

// New returns an empty Document with a fresh run ID.
func New(source string, now time.Time) *Document {
	return &Document{RunID: uuid.New(), GeneratedAt: now.UTC(), Source: source}
}

// SetRanking records the engine's ranking and unreachable cases.
func (d *Document) SetRanking(res scenario.Result) {
	d.Ranking = make([]RankEntry, len(res.Ranking))
	for i, r := range res.Ranking {
		d.Ranking[i] = RankEntry{
			Rank:          i + 1,
			Mode:          r.Key.Mode.String(),
			Port:          r.Key.Port,
			Risk:          r.Key.Risk,
			ExpectedValue: r.Exact().Round(2),
		}
	}
	d.Unreachable = make([]Unreachable, len(res.Unreachable))
	for i, c := range res.Unreachable {
		d.Unreachable[i] = Unreachable{
			Mode:  c.Mode.String(),
			Port:  c.Port.Name,
			Risk:  c.Risk.Name,
			Price: Money(c.Price),
		}
	}
}

// SetWinner records the detailed evaluation of the chosen configuration.
func (d *Document) SetWinner(o scenario.Outcome) {
	w := &Winner{
		Mode:                  o.Case.Mode.String(),
		Port:                  o.Case.Port.Name,
		Risk:                  o.Case.Risk.Name,
		Price:                 Money(o.Case.Price),
		Route:                 append([]string(nil), o.Labels...),
		Capital:               Money(o.PerTon.Capital),
		Operating:             Money(o.PerTon.Operating),
		RiskPerTon:            Money(o.PerTon.Risk),
		Handling:              Money(o.PerTon.Handling),
		PortUpgrade:           Money(o.PortPerTon),
		CostPerTon:            Money(o.CostPerTon),
		InfrastructureCapital: Money(o.InfrastructureCapital),
		TotalNet:              Money(o.Projection.TotalNet),
		NPV:                   Money(o.Projection.NPV),
		CashFlow:              make([]CashFlowRow, len(o.Projection.Years)),
	}
	for i, y := range o.Projection.Years {
		w.CashFlow[i] = CashFlowRow{
			Year:          y.Year,
			Tons:          Money(y.Tons),
			Price:         Money(y.Price),
			FleetUnits:    y.FleetUnits,
			Revenue:       Money(y.Revenue),
			MineOpex:      Money(y.MineOpex),
			TransportOpex: Money(y.TransportOpex),
			FleetCapex:    Money(y.FleetCapex),
			Insurance:     Money(y.Insurance),
			ESG:           Money(y.ESG),
			Maintenance:   Money(y.Maintenance),
			Depreciation:  Money(y.Depreciation),
			NetProfit:     Money(y.NetProfit),
			DiscountedNet: Money(y.DiscountedNet),
		}
	}
	d.Winner = w
}

// SetSensitivity records a sweep.
func (d *Document) SetSensitivity(t explore.Table) {
	s := &Sensitivity{
		Mode:   t.Key.Mode.String(),
		Port:   t.Key.Port,
		Risk:   t.Key.Risk,
		Prices: moneyAll(t.Prices),
		Tons:   moneyAll(t.Tons),
		Cells:  make([]SensitivityCell, len(t.Rows)),
	}
	for i, r := range t.Rows {
		c := SensitivityCell{Price: Money(r.Price), Tons: Money(r.Tons)}
		if r.Reachable {
			single, npv := Money(r.SingleYearProfit), Money(r.NPV)
			c.SingleYearProfit, c.NPV = &single, &npv
		}
		s.Cells[i] = c
	}
	d.Sensitivity = s
}

// SetMonteCarlo records simulation statistics.
func (d *Document) SetMonteCarlo(s explore.Summary) {
	d.MonteCarlo = &MonteCarlo{
		Mode:            s.Key.Mode.String(),
		Port:            s.Key.Port,
		Risk:            s.Key.Risk,
		Seed:            s.Seed,
		Trials:          s.Trials,
		Valid:           s.Valid,
		Unreachable:     s.Unreachable,
		Mean:            Money(s.Mean),
		StdDev:          Money(s.StdDev),
		LossProbability: ratio(s.LossProbability),
		P5:              Money(s.P5),
		P50:             Money(s.P50),
		P95:             Money(s.P95),
	}
}

// WriteJSON writes d as indented JSON.
func WriteJSON(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(d)
}

func moneyAll(vs []float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		out[i] = Money(v)
	}

	return out
}
