// Package report renders planned tours and their statistics as text or YAML.
//
// It only consumes values produced elsewhere (cell slices, orienteer results);
// nothing rendered here feeds back into planning.
//
//   - FormatTour:  "(0,0) -> (1,0) -> (0,0)" path text.
//   - WriteText:   aligned summary block (text/tabwriter).
//   - WriteYAML:   the same summary as a YAML document.
//   - WriteGrid:   reward map of a cell set, one text row per y.
package report
