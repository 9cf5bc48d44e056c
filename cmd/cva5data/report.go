package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.yaml.in/yaml/v3"

	"github.com/ezrec/cva5data/data"
	"github.com/ezrec/cva5data/version"
)

// Info is the -info document.
type Info struct {
	DataLocation string           `yaml:"data_location"`
	Source       string           `yaml:"src"`
	Versions     []version.Record `yaml:"versions"`
}

func writeLine(w io.Writer, line string) {
	fmt.Fprintln(w, line)
}

func writeInfo(w io.Writer, loc *data.Locator) (err error) {
	doc := Info{
		DataLocation: loc.DataRoot,
		Source:       data.Source,
		Versions:     version.Records(),
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(&doc); err != nil {
		return
	}

	return enc.Close()
}

func writeTable(w io.Writer, recs []version.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Axis", "Version", "Parsed", "Tuple", "Git Describe", "Git Hash"})

	for _, rec := range recs {
		ver := "-"
		if parsed, ok := version.Parsed(rec.Axis); ok {
			ver = parsed.String()
		}
		t.AppendRow(table.Row{
			rec.Axis.String(),
			rec.String,
			ver,
			fmt.Sprintf("%d.%d.%d", rec.Tuple[0], rec.Tuple[1], rec.Tuple[2]),
			rec.GitDescribe,
			rec.GitHash,
		})
	}

	t.Render()
}
