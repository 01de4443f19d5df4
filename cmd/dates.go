package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/findingaid/ead"
	"github.com/lehigh-university-libraries/findingaid/format"
)

var (
	datesInput       string
	datesOutput      string
	datesFormat      string
	datesQuery       string
	datesProfileName string
	datesProfileFile string
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List file dates keyed by inventory number",
	Long: `List the date of every file that has both an inventory number and a
handle, with the begin and end year derived from the normalized date.

With --output, two files are written: <base>.tsv with one row per file and
<base>.json keyed by inventory number. Without it, the listing goes to
stdout in the chosen format.

Examples:
  findingaid dates -i inventory.xml -o dates
  findingaid dates -i inventory.xml --format json --query '.["42"].year_begin'`,
	Args: cobra.NoArgs,
	RunE: runDates,
}

func init() {
	datesCmd.Flags().StringVarP(&datesInput, "input", "i", "", "Input EAD file (default: stdin)")
	datesCmd.Flags().StringVarP(&datesOutput, "output", "o", "", "Base name for <base>.tsv and <base>.json (default: stdout)")
	datesCmd.Flags().StringVarP(&datesFormat, "format", "f", "", "Output format when writing to stdout (csv, tsv, json, yaml, table)")
	datesCmd.Flags().StringVarP(&datesQuery, "query", "q", "", "jq expression applied to json/yaml output")
	datesCmd.Flags().StringVarP(&datesProfileName, "profile", "p", "", "Conversion profile name")
	datesCmd.Flags().StringVar(&datesProfileFile, "profile-file", "", "Custom profile YAML file")
}

func runDates(cmd *cobra.Command, args []string) error {
	p, err := loadProfile(datesProfileName, datesProfileFile)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	doc, inputName, err := readDocument(datesInput)
	if err != nil {
		return err
	}

	export, err := ead.ExtractDates(doc, p.Classifier())
	if err != nil {
		return fmt.Errorf("extracting dates from %s: %w", inputName, err)
	}
	export.Diagnostics.Log(slog.Default())
	slog.Info("extracted dates", "input", inputName, "files", len(export.Records))

	ds := datesDataset(export)
	opts := format.NewSerializeOptions()
	opts.Query = datesQuery

	if datesOutput == "" {
		s, err := chooseSerializer(datesFormat, "")
		if err != nil {
			return err
		}
		return serialize("", s, ds, opts)
	}

	base := datesOutput
	if ext := filepath.Ext(base); ext == ".tsv" || ext == ".json" {
		base = strings.TrimSuffix(base, ext)
	}
	for _, name := range []string{"tsv", "json"} {
		s, err := format.GetSerializer(name)
		if err != nil {
			return err
		}
		path := base + "." + name
		if err := serialize(path, s, ds, opts); err != nil {
			return err
		}
		slog.Info("wrote dates", "path", path)
	}
	return nil
}

func datesDataset(export *ead.DateExport) *format.Dataset {
	rows := make([][]string, len(export.Records))
	for i, r := range export.Records {
		rows[i] = r.Row()
	}
	return &format.Dataset{
		Name:    "dates",
		Columns: ead.DateColumns,
		Rows:    format.StringRows(rows),
		Records: export.ByInventoryNumber,
	}
}
