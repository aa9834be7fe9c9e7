package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
)

// WriteText renders d as aligned plain-text tables, one section per
// non-empty part of the document.
func WriteText(w io.Writer, d *Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "run %s\tgenerated %s\n", d.RunID, d.GeneratedAt.Format(time.RFC3339))
	if d.Source != "" {
		fmt.Fprintf(tw, "source\t%s\n", d.Source)
	}

	if len(d.Ranking) > 0 {
		fmt.Fprintln(tw, "\nRANKING (expected 5-year NPV)")
		fmt.Fprintln(tw, "#\tMODE\tPORT\tRISK\tEXPECTED")
		for _, r := range d.Ranking {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.Rank, r.Mode, r.Port, r.Risk, r.ExpectedValue.StringFixed(2))
		}
	}

	if len(d.Unreachable) > 0 {
		fmt.Fprintln(tw, "\nUNREACHABLE")
		fmt.Fprintln(tw, "MODE\tPORT\tRISK\tPRICE")
		for _, u := range d.Unreachable {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.Mode, u.Port, u.Risk, u.Price.StringFixed(2))
		}
	}

	if win := d.Winner; win != nil {
		fmt.Fprintf(tw, "\nCONFIGURATION %s / %s / %s at %s\n", win.Mode, win.Port, win.Risk, win.Price.StringFixed(2))
		fmt.Fprintf(tw, "route\t%s\n", strings.Join(win.Route, " -> "))
		fmt.Fprintf(tw, "capital/t\t%s\n", win.Capital.StringFixed(2))
		fmt.Fprintf(tw, "operating/t\t%s\n", win.Operating.StringFixed(2))
		fmt.Fprintf(tw, "risk/t\t%s\n", win.RiskPerTon.StringFixed(2))
		fmt.Fprintf(tw, "handling/t\t%s\n", win.Handling.StringFixed(2))
		fmt.Fprintf(tw, "port upgrade/t\t%s\n", win.PortUpgrade.StringFixed(2))
		fmt.Fprintf(tw, "total/t\t%s\n", win.CostPerTon.StringFixed(2))
		fmt.Fprintln(tw, "\nYEAR\tTONS\tPRICE\tFLEET\tREVENUE\tMINE\tTRANSPORT\tCAPEX\tINSURANCE\tESG\tMAINT\tDEPREC\tNET\tDISCOUNTED")
		for _, y := range win.CashFlow {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				y.Year, y.Tons.StringFixed(0), y.Price.StringFixed(2), y.FleetUnits,
				y.Revenue.StringFixed(2), y.MineOpex.StringFixed(2), y.TransportOpex.StringFixed(2),
				y.FleetCapex.StringFixed(2), y.Insurance.StringFixed(2), y.ESG.StringFixed(2),
				y.Maintenance.StringFixed(2), y.Depreciation.StringFixed(2),
				y.NetProfit.StringFixed(2), y.DiscountedNet.StringFixed(2))
		}
		fmt.Fprintf(tw, "total net\t%s\n", win.TotalNet.StringFixed(2))
		fmt.Fprintf(tw, "npv\t%s\n", win.NPV.StringFixed(2))
	}

	if s := d.Sensitivity; s != nil {
		writeMatrix(tw, s, "SENSITIVITY single-year net", func(c SensitivityCell) string { return fixed(c.SingleYearProfit) })
		writeMatrix(tw, s, "SENSITIVITY 5-year NPV", func(c SensitivityCell) string { return fixed(c.NPV) })
	}

	if mc := d.MonteCarlo; mc != nil {
		fmt.Fprintf(tw, "\nMONTE CARLO %s / %s / %s\n", mc.Mode, mc.Port, mc.Risk)
		fmt.Fprintf(tw, "seed\t%d\n", mc.Seed)
		fmt.Fprintf(tw, "trials\t%d (valid %d, unreachable %d)\n", mc.Trials, mc.Valid, mc.Unreachable)
		fmt.Fprintf(tw, "mean\t%s\n", mc.Mean.StringFixed(2))
		fmt.Fprintf(tw, "std dev\t%s\n", mc.StdDev.StringFixed(2))
		fmt.Fprintf(tw, "P(loss)\t%s\n", mc.LossProbability.StringFixed(4))
		fmt.Fprintf(tw, "p5 / p50 / p95\t%s / %s / %s\n", mc.P5.StringFixed(2), mc.P50.StringFixed(2), mc.P95.StringFixed(2))
	}

	return tw.Flush()
}

// writeMatrix prints one row per tonnage and one column per price.
func writeMatrix(tw io.Writer, s *Sensitivity, title string, cell func(SensitivityCell) string) {
	fmt.Fprintf(tw, "\n%s (%s / %s / %s)\n", title, s.Mode, s.Port, s.Risk)
	fmt.Fprint(tw, "TONS \\ PRICE")
	for _, p := range s.Prices {
		fmt.Fprintf(tw, "\t%s", p.StringFixed(2))
	}
	fmt.Fprintln(tw)
	for ti, tn := range s.Tons {
		fmt.Fprint(tw, tn.StringFixed(0))
		for pi := range s.Prices {
			fmt.Fprintf(tw, "\t%s", cell(s.Cells[ti*len(s.Prices)+pi]))
		}
		fmt.Fprintln(tw)
	}
}

func fixed(v *decimal.Decimal) string {
	if v == nil {
		return "-"
	}

	return v.StringFixed(2)
}
