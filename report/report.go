package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cellroute/cell"
	"github.com/katalvlaran/cellroute/orienteer"
)

// pathSep joins consecutive cells in FormatTour.
const pathSep = " -> "

// FormatCell renders the coordinates of c as "(x,y)".
func FormatCell(c cell.Cell) string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// FormatTour renders tour as "(x,y) -> (x,y) -> …"; an empty tour is "-".
func FormatTour(tour []cell.Cell) string {
	if len(tour) == 0 {
		return "-"
	}
	parts := make([]string, len(tour))
	for i, c := range tour {
		parts[i] = FormatCell(c)
	}

	return strings.Join(parts, pathSep)
}

// Summary is the serializable view of one planned tour.
type Summary struct {
	Title         string   `yaml:"title"`
	Tour          []string `yaml:"tour"`
	TotalReward   float64  `yaml:"total_reward"`
	TotalDistance float64  `yaml:"total_distance"`
	TotalTime     float64  `yaml:"total_time"`
	UniqueCells   int      `yaml:"unique_cells"`
	Skipped       int      `yaml:"skipped"`
	Iterations    int      `yaml:"iterations,omitempty"`
	Candidates    int      `yaml:"candidates,omitempty"`
	OverBudget    bool     `yaml:"over_budget,omitempty"`
}

// Summarize builds the Summary of res under title.
func Summarize(title string, res orienteer.Result) Summary {
	tour := make([]string, len(res.Tour))
	for i, c := range res.Tour {
		tour[i] = FormatCell(c)
	}

	return Summary{
		Title:         title,
		Tour:          tour,
		TotalReward:   res.Stats.TotalReward,
		TotalDistance: res.Stats.TotalDistance,
		TotalTime:     res.Stats.TotalTime,
		UniqueCells:   res.Stats.UniqueCells,
		Skipped:       res.Skipped,
		Iterations:    res.Iterations,
		Candidates:    res.Candidates,
		OverBudget:    res.Degenerate,
	}
}

// WriteText writes a human-readable summary block of res to w.
func WriteText(w io.Writer, title string, res orienteer.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", title)
	fmt.Fprintf(tw, "  route:\t%s\n", FormatTour(res.Tour))
	fmt.Fprintf(tw, "  total reward:\t%g\n", res.Stats.TotalReward)
	fmt.Fprintf(tw, "  total distance:\t%.4f\n", res.Stats.TotalDistance)
	fmt.Fprintf(tw, "  total time:\t%.4f\n", res.Stats.TotalTime)
	fmt.Fprintf(tw, "  unique cells:\t%d\n", res.Stats.UniqueCells)
	fmt.Fprintf(tw, "  skipped cells:\t%d\n", res.Skipped)
	if res.Candidates > 0 || res.Iterations > 0 {
		fmt.Fprintf(tw, "  candidates:\t%d (%d iterations)\n", res.Candidates, res.Iterations)
	}
	if res.Degenerate {
		fmt.Fprintf(tw, "  warning:\tround trip exceeds the time budget\n")
	}

	return tw.Flush()
}

// WriteYAML writes the Summary of res to w as one YAML document.
func WriteYAML(w io.Writer, title string, res orienteer.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Summarize(title, res)); err != nil {
		return fmt.Errorf("WriteYAML(%s): %w", title, err)
	}

	return enc.Close()
}

// WriteGrid writes the reward of every cell on a text grid: one row per y
// (highest first, as on a plot), one column per x. Positions without a cell
// are shown as "."; when cells share a position the last one listed wins.
func WriteGrid(w io.Writer, cells []cell.Cell) error {
	if len(cells) == 0 {
		_, err := io.WriteString(w, "(no cells)\n")
		return err
	}

	var (
		minX, maxX = cells[0].X, cells[0].X
		minY, maxY = cells[0].Y, cells[0].Y
		rewards    = make(map[[2]int]float64, len(cells))
	)
	for _, c := range cells {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
		rewards[[2]int{c.X, c.Y}] = c.Reward
	}

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', tabwriter.AlignRight)
	var x, y int
	for y = maxY; y >= minY; y-- {
		fmt.Fprintf(tw, "%d |\t", y)
		for x = minX; x <= maxX; x++ {
			if r, ok := rewards[[2]int{x, y}]; ok {
				fmt.Fprintf(tw, "%g\t", r)
			} else {
				fmt.Fprint(tw, ".\t")
			}
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
