package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/TrevorS/upgma"
)

// mergeReport is one row of the merge history.
type mergeReport struct {
	Step     int     `json:"step"     yaml:"step"`
	ID       int     `json:"id"       yaml:"id"`
	Left     int     `json:"left"     yaml:"left"`
	Right    int     `json:"right"    yaml:"right"`
	Distance float64 `json:"distance" yaml:"distance"`
	Height   float64 `json:"height"   yaml:"height"`
	Size     int     `json:"size"     yaml:"size"`
	Label    string  `json:"label"    yaml:"label"`
}

// report is the serialized form of a clustering result.
type report struct {
	Names  []string      `json:"names"            yaml:"names"`
	Newick string        `json:"newick"           yaml:"newick"`
	Root   int           `json:"root"             yaml:"root"`
	Merges []mergeReport `json:"merges"           yaml:"merges"`
	Groups []int         `json:"groups,omitempty" yaml:"groups,omitempty"`
}

func buildReport(result *upgma.Result, groups []int) report {
	n := len(result.Names)
	rep := report{
		Names:  result.Names,
		Newick: result.Newick(),
		Root:   result.Root,
		Merges: make([]mergeReport, 0, len(result.Linkage)),
		Groups: groups,
	}

	for k, row := range result.Linkage {
		id := n + k
		rep.Merges = append(rep.Merges, mergeReport{
			Step:     k + 1,
			ID:       id,
			Left:     int(row[0]),
			Right:    int(row[1]),
			Distance: row[2],
			Height:   result.Heights[id],
			Size:     int(row[3]),
			Label:    result.Labels[id],
		})
	}

	return rep
}

func writeResult(w io.Writer, result *upgma.Result, format string, groups []int) error {
	switch format {
	case formatNewick:
		_, err := fmt.Fprintln(w, result.Newick())
		return err
	case formatTable:
		return writeTable(w, buildReport(result, groups))
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(buildReport(result, groups))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(buildReport(result, groups)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeTable(w io.Writer, rep report) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Step", "ID", "Left", "Right", "Distance", "Height", "Size", "Label"})

	for _, m := range rep.Merges {
		tbl.AppendRow(table.Row{
			m.Step,
			m.ID,
			m.Left,
			m.Right,
			strconv.FormatFloat(m.Distance, 'f', -1, 64),
			strconv.FormatFloat(m.Height, 'f', -1, 64),
			m.Size,
			m.Label,
		})
	}

	tbl.AppendFooter(table.Row{"", "", "", "", "", "", "Root", rep.Root})
	tbl.Render()

	if len(rep.Groups) > 0 {
		groups := table.NewWriter()
		groups.SetOutputMirror(w)
		groups.SetStyle(table.StyleLight)
		groups.AppendHeader(table.Row{"Sample", "Group"})
		for i, g := range rep.Groups {
			groups.AppendRow(table.Row{rep.Names[i], g})
		}
		groups.Render()
	}

	return nil
}
