package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/findingaid/ead"
	"github.com/lehigh-university-libraries/findingaid/format"
	"github.com/lehigh-university-libraries/findingaid/table"

	// Register output formats
	_ "github.com/lehigh-university-libraries/findingaid/format/csv"
	_ "github.com/lehigh-university-libraries/findingaid/format/json"
	_ "github.com/lehigh-university-libraries/findingaid/format/table"
	_ "github.com/lehigh-university-libraries/findingaid/format/yaml"
)

var (
	inputFile    string
	outputFile   string
	outputFormat string
	profileName  string
	profileFile  string
	depth        int
	nullValue    string
	lookupsFile  string
	query        string
	noHeader     bool
)

var flattenCmd = &cobra.Command{
	Use:   "flatten",
	Short: "Flatten a finding aid into one row per file",
	Long: `Flatten an EAD finding aid into a table with one row per file.

Columns are series, subseries_1..subseries_K, filegroup, filegroup_id,
file, unitdate, inventory_num and mets_file, where K is the subseries
depth. Files without an inventory number are left out and counted.

Input defaults to stdin, output defaults to stdout. The output format is
taken from --format, then from the output file extension; on a terminal
it defaults to an aligned table, otherwise to tsv.

Examples:
  findingaid flatten -i inventory.xml -o inventory.tsv
  findingaid flatten -i inventory.xml --depth 4 --null NULL -o inventory.csv
  findingaid flatten -i inventory.xml --lookups lookups.json
  findingaid flatten -i inventory.xml --format json --query 'map(select(.subseries_1 == null))'`,
	Args: cobra.NoArgs,
	RunE: runFlatten,
}

func init() {
	flattenCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input EAD file (default: stdin)")
	flattenCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	flattenCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format (csv, tsv, json, yaml, table)")
	flattenCmd.Flags().StringVarP(&profileName, "profile", "p", "", "Conversion profile name")
	flattenCmd.Flags().StringVar(&profileFile, "profile-file", "", "Custom profile YAML file")
	flattenCmd.Flags().IntVar(&depth, "depth", table.DefaultMaxSubseriesDepth, "Number of subseries columns (overrides profile)")
	flattenCmd.Flags().StringVar(&nullValue, "null", "", "Marker for absent cells (overrides profile)")
	flattenCmd.Flags().StringVar(&lookupsFile, "lookups", "", "Also write title lookups to this file (json or yaml)")
	flattenCmd.Flags().StringVarP(&query, "query", "q", "", "jq expression applied to json/yaml output")
	flattenCmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the header row in delimited output")
}

func runFlatten(cmd *cobra.Command, args []string) error {
	p, err := loadProfile(profileName, profileFile)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	maxDepth := p.Depth()
	if cmd.Flags().Changed("depth") {
		maxDepth = depth
	}
	null := p.Table.NullValue
	if cmd.Flags().Changed("null") {
		null = nullValue
	}
	delimiter, err := p.DelimiterRune()
	if err != nil {
		return err
	}

	serializer, err := chooseSerializer(outputFormat, outputFile)
	if err != nil {
		return err
	}

	doc, inputName, err := readDocument(inputFile)
	if err != nil {
		return err
	}

	res, err := ead.Parse(doc, &ead.Options{
		Classifier: p.Classifier(),
		Logger:     slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("flattening %s: %w", inputName, err)
	}
	res.Diagnostics.Log(slog.Default())

	tbl, err := table.Build(res.Files, table.Options{MaxSubseriesDepth: maxDepth})
	if err != nil {
		return err
	}
	slog.Info("flattened finding aid",
		"input", inputName,
		"profile", p.Name,
		"files", tbl.Files,
		"rows", len(tbl.Rows),
		"without_id", tbl.WithoutID,
	)
	if tbl.MultipleFilegroups > 0 {
		slog.Warn("files under more than one file group; only the first is kept", "files", tbl.MultipleFilegroups)
	}

	opts := &format.SerializeOptions{
		Delimiter:     delimiter,
		NullValue:     null,
		IncludeHeader: !noHeader,
		Pretty:        true,
		Query:         query,
	}
	if err := serialize(outputFile, serializer, tableDataset(tbl), opts); err != nil {
		return err
	}

	if lookupsFile != "" {
		if err := writeLookups(lookupsFile, table.BuildLookups(res.Files)); err != nil {
			return err
		}
	}
	return nil
}

func tableDataset(tbl *table.Table) *format.Dataset {
	rows := make([][]*string, len(tbl.Rows))
	for i, row := range tbl.Rows {
		rows[i] = row
	}
	return &format.Dataset{
		Name:    "table",
		Columns: tbl.Columns,
		Rows:    rows,
		Records: tbl.Records(),
	}
}

// writeLookups writes the title lookups, as JSON unless the file
// extension names another structured format.
func writeLookups(path string, lookups table.Lookups) error {
	name := "json"
	if filepath.Ext(path) != "" {
		f, err := format.DetectFormat(path)
		if err != nil {
			return fmt.Errorf("lookups: %w", err)
		}
		name = f.Name()
	}
	s, err := format.GetSerializer(name)
	if err != nil {
		return err
	}

	ds := &format.Dataset{Name: "lookups", Records: lookups.Records()}
	if err := serialize(path, s, ds, format.NewSerializeOptions()); err != nil {
		return err
	}
	slog.Info("wrote lookups",
		"path", path,
		"series", len(lookups.Series),
		"subseries", len(lookups.Subseries),
		"subsubseries", len(lookups.Subsubseries),
	)
	return nil
}
