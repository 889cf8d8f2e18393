package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/referendum-atlas/backend/internal/domain"
)

// WriteTable prints the aggregated results as an aligned text table, one
// region per line in the order given.
func WriteTable(w io.Writer, results []domain.RegionResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "CODE\tREGION\tREGISTERED\tABSTENTIONS\tNULL\tCHOICE A\tCHOICE B\tRATIO A")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			res.CodeReg, res.NameReg,
			res.Registered, res.Abstentions, res.Null, res.ChoiceA, res.ChoiceB,
			formatRatio(res.Ratio()))
	}

	return tw.Flush()
}

func formatRatio(ratio float64) string {
	if math.IsNaN(ratio) {
		return "-"
	}

	return strconv.FormatFloat(ratio, 'f', 4, 64)
}
