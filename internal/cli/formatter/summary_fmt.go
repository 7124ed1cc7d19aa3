package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/service"
)

// FinanceSummary renders one month's income/expense totals with a
// per-category breakdown.
func FinanceSummary(sum *service.MonthlySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", StyleHeader.Render(fmt.Sprintf("%s %d", sum.Month, sum.Year)))
	fmt.Fprintf(&b, "  income   %s\n", StyleGreen.Render(fmt.Sprintf("%10.2f", sum.Income)))
	fmt.Fprintf(&b, "  expenses %s\n", StyleRed.Render(fmt.Sprintf("%10.2f", sum.Expenses)))

	netStyle := StyleGreen
	if sum.Net < 0 {
		netStyle = StyleRed
	}
	fmt.Fprintf(&b, "  net      %s\n", netStyle.Render(fmt.Sprintf("%10.2f", sum.Net)))

	if len(sum.ByCategory) > 0 {
		b.WriteString("\n")
		categories := make([]string, 0, len(sum.ByCategory))
		for c := range sum.ByCategory {
			categories = append(categories, c)
		}
		sort.Slice(categories, func(i, j int) bool {
			return sum.ByCategory[categories[i]] > sum.ByCategory[categories[j]]
		})
		for _, c := range categories {
			fmt.Fprintf(&b, "  %-16s %s\n", c, Dim(fmt.Sprintf("%10.2f", sum.ByCategory[c])))
		}
	}
	return b.String()
}

// Routine renders an AI-drafted daily routine.
func Routine(items []contract.RoutineItem) string {
	var b strings.Builder
	for _, it := range items {
		title := it.Title
		if it.Icon != "" {
			title = it.Icon + " " + title
		}
		fmt.Fprintf(&b, "%s  %s %s\n", Dim(it.Time), title, Dim(fmt.Sprintf("(%d min)", it.Duration)))
	}
	return b.String()
}

// Highlights renders the model's picks for the day.
func Highlights(hs []contract.Highlight) string {
	if len(hs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleHeader.Render("HIGHLIGHTS") + "\n")
	for _, h := range hs {
		fmt.Fprintf(&b, "  %s %s — %s\n", StyleYellow.Render("★"), Bold(h.Title), h.Reason)
	}
	return b.String()
}
