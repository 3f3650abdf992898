package cli

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/paretodecide/pdctl/pkg/decision"
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func itemRow(item decision.Item, criteria []decision.Criterion) []string {
	row := make([]string, 0, len(criteria)+1)
	row = append(row, item.Name)
	for _, c := range criteria {
		row = append(row, formatValue(item.Values[c.Name]))
	}
	return row
}

func headerRow(criteria []decision.Criterion) []string {
	cols := make([]string, 0, len(criteria)+1)
	cols = append(cols, "name")
	for _, c := range criteria {
		cols = append(cols, c.Name)
	}
	return cols
}

// renderTable produces the plain-text view of a result document.
func renderTable(res *decision.Result, items []decision.Item) string {
	var b strings.Builder
	s := res.Summary

	fmt.Fprintf(&b, "Total: %d  Pareto: %d  Ratio: %.0f%%\n",
		s.Total, s.ParetoCount, s.ParetoRatio*100)
	if res.SortField != "" {
		fmt.Fprintf(&b, "Sweet spots: %d  Traps: %d  Segments: %d\n",
			s.SweetSpots, s.Traps, s.Segments)
	}

	if len(res.ParetoFront) > 0 {
		b.WriteString("\n== Pareto Front ==\n")
		cols := headerRow(res.Criteria)
		rows := make([][]string, 0, len(res.ParetoFront))
		for _, i := range res.ParetoFront {
			rows = append(rows, itemRow(items[i], res.Criteria))
		}
		writeAligned(&b, cols, rows)
	}

	if res.FrontTradeoffs != nil {
		b.WriteString("\n== Front Trade-offs ==\n")
		for _, item := range res.FrontTradeoffs.Items {
			var parts []string
			if len(item.Strengths) > 0 {
				parts = append(parts, "strong: "+strings.Join(item.Strengths, ", "))
			}
			if len(item.Weaknesses) > 0 {
				parts = append(parts, "weak: "+strings.Join(item.Weaknesses, ", "))
			}
			desc := "balanced"
			if len(parts) > 0 {
				desc = strings.Join(parts, "; ")
			}
			fmt.Fprintf(&b, "  %s: %s\n", item.Name, desc)
		}
		for _, pw := range res.FrontTradeoffs.Pairwise {
			fmt.Fprintf(&b, "  %s vs %s: %s>%s | %s>%s\n",
				pw.A, pw.B,
				pw.A, orDash(pw.ABetterAt),
				pw.B, orDash(pw.BBetterAt))
		}
	}

	if len(res.SweetSpots) > 0 {
		b.WriteString("\n== Sweet Spots ==\n")
		for _, ss := range res.SweetSpots {
			fmt.Fprintf(&b, "  %s (gain: %.2f) vs %s at %s=%s\n",
				ss.Name, ss.GainScore, ss.ComparedToName,
				res.SortField, formatValue(ss.SortValue))
		}
	}

	if len(res.SegmentBests) > 0 {
		b.WriteString("\n== Best per Segment ==\n")
		for _, seg := range res.SegmentBests {
			alt := ""
			if len(seg.Alternatives) > 0 {
				alt = " (alt: " + strings.Join(seg.Alternatives, ", ") + ")"
			}
			fmt.Fprintf(&b, "  [%s-%s] %s (score: %.2f)%s\n",
				formatValue(seg.RangeLow), formatValue(seg.RangeHigh),
				seg.Name, seg.CompositeScore, alt)
		}
	}

	if len(res.TierTransitions) > 0 {
		b.WriteString("\n== Tier Transitions ==\n")
		for _, tr := range res.TierTransitions {
			jumps := orDash(tr.KeyJumps)
			fmt.Fprintf(&b, "  %s -> %s: +%s %s, gain %.2f (%s)\n",
				tr.FromName, tr.ToName,
				formatValue(tr.DeltaSort), res.SortField, tr.GainScore, jumps)
		}
	}

	if len(res.WeightedRanking) > 0 {
		b.WriteString("\n== Weighted Ranking ==\n")
		for _, wr := range res.WeightedRanking {
			fmt.Fprintf(&b, "  #%d %s (score: %.2f)\n", wr.Rank, wr.Name, wr.CompositeScore)
		}
	}

	if len(res.Traps) > 0 {
		b.WriteString("\n== Traps ==\n")
		for _, t := range res.Traps {
			fmt.Fprintf(&b, "  %s looks close to %s (%s diff: %s) but is strictly worse\n",
				t.Name, t.FrontName, res.SortField, formatValue(t.SortDelta))
		}
	}

	if len(res.Dominated) > 0 {
		fmt.Fprintf(&b, "\n== Dominated (%d) ==\n", len(res.Dominated))
		for _, d := range res.Dominated {
			names := make([]string, 0, len(d.DominatedBy))
			for _, db := range d.DominatedBy {
				names = append(names, db.Name)
			}
			fmt.Fprintf(&b, "  %s <- dominated by %s\n", d.Name, strings.Join(names, ", "))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderMarkdown produces the markdown view of a result document.
func renderMarkdown(res *decision.Result, items []decision.Item) string {
	var b strings.Builder
	s := res.Summary

	b.WriteString("# Pareto Analysis\n\n")
	b.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&b, "| Total | %d |\n", s.Total)
	fmt.Fprintf(&b, "| Pareto optimal | %d |\n", s.ParetoCount)
	fmt.Fprintf(&b, "| Pareto ratio | %.0f%% |\n", s.ParetoRatio*100)
	if res.SortField != "" {
		fmt.Fprintf(&b, "| Sweet spots | %d |\n", s.SweetSpots)
		fmt.Fprintf(&b, "| Traps | %d |\n", s.Traps)
	}

	if len(res.ParetoFront) > 0 {
		b.WriteString("\n## Pareto Front\n\n")
		cols := headerRow(res.Criteria)
		b.WriteString("| " + strings.Join(cols, " | ") + " |\n")
		b.WriteString("|" + strings.Repeat(" --- |", len(cols)) + "\n")
		for _, i := range res.ParetoFront {
			b.WriteString("| " + strings.Join(itemRow(items[i], res.Criteria), " | ") + " |\n")
		}
	}

	if res.FrontTradeoffs != nil {
		b.WriteString("\n## Front Trade-offs\n\n")
		b.WriteString("| Item | Strengths | Weaknesses |\n| --- | --- | --- |\n")
		for _, item := range res.FrontTradeoffs.Items {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				item.Name, orDash(item.Strengths), orDash(item.Weaknesses))
		}
		if len(res.FrontTradeoffs.Pairwise) > 0 {
			b.WriteString("\n")
			for _, pw := range res.FrontTradeoffs.Pairwise {
				fmt.Fprintf(&b, "- **%s** vs **%s**: %s wins on %s; %s wins on %s\n",
					pw.A, pw.B, pw.A, orDash(pw.ABetterAt), pw.B, orDash(pw.BBetterAt))
			}
		}
	}

	if len(res.SweetSpots) > 0 {
		b.WriteString("\n## Sweet Spots\n\n")
		for rank, ss := range res.SweetSpots {
			fmt.Fprintf(&b, "**%d. %s** (gain score: %.2f, vs %s)\n\n",
				rank+1, ss.Name, ss.GainScore, ss.ComparedToName)
		}
	}

	if len(res.SegmentBests) > 0 {
		b.WriteString("\n## Best per Segment\n\n")
		b.WriteString("| Range | Best | Score | Alternatives | Items |\n| --- | --- | --- | --- | --- |\n")
		for _, seg := range res.SegmentBests {
			fmt.Fprintf(&b, "| %s-%s | %s | %.2f | %s | %d |\n",
				formatValue(seg.RangeLow), formatValue(seg.RangeHigh),
				seg.Name, seg.CompositeScore, orDash(seg.Alternatives), seg.ItemCount)
		}
	}

	if len(res.TierTransitions) > 0 {
		b.WriteString("\n## Tier Transitions\n\n")
		b.WriteString("| From | To | Delta | Gain Score | Key Jumps |\n| --- | --- | --- | --- | --- |\n")
		for _, tr := range res.TierTransitions {
			fmt.Fprintf(&b, "| %s | %s | %s | %.2f | %s |\n",
				tr.FromName, tr.ToName, formatValue(tr.DeltaSort),
				tr.GainScore, orDash(tr.KeyJumps))
		}
	}

	if len(res.WeightedRanking) > 0 {
		b.WriteString("\n## Weighted Ranking\n\n")
		b.WriteString("| Rank | Item | Composite Score |\n| --- | --- | --- |\n")
		for _, wr := range res.WeightedRanking {
			fmt.Fprintf(&b, "| %d | %s | %.2f |\n", wr.Rank, wr.Name, wr.CompositeScore)
		}
	}

	if len(res.Traps) > 0 {
		b.WriteString("\n## Traps\n\n")
		for _, t := range res.Traps {
			fmt.Fprintf(&b, "- **%s** -> %s (%s diff: %s)\n",
				t.Name, t.FrontName, res.SortField, formatValue(t.SortDelta))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderCSV emits the Pareto front rows as CSV.
func renderCSV(res *decision.Result, items []decision.Item) string {
	if len(res.ParetoFront) == 0 {
		return ""
	}
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(headerRow(res.Criteria))
	for _, i := range res.ParetoFront {
		_ = w.Write(itemRow(items[i], res.Criteria))
	}
	w.Flush()
	return b.String()
}

func orDash(vals []string) string {
	if len(vals) == 0 {
		return "-"
	}
	return strings.Join(vals, ", ")
}

func writeAligned(b *strings.Builder, cols []string, rows [][]string) {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, v := range row {
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	pad := func(row []string) string {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v + strings.Repeat(" ", widths[i]-len(v))
		}
		return strings.Join(cells, " | ")
	}

	b.WriteString(pad(cols) + "\n")
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = strings.Repeat("-", widths[i])
	}
	b.WriteString(strings.Join(seps, "-+-") + "\n")
	for _, row := range rows {
		b.WriteString(pad(row) + "\n")
	}
}
