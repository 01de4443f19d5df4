package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/findingaid/ead"
	"github.com/lehigh-university-libraries/findingaid/helpers"
)

var (
	validateInput       string
	validateProfileName string
	validateProfileFile string
	validateVerbose     bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a finding aid without writing output",
	Long: `Walk a finding aid and report whether it matches the expected structure.

Unexpected elements and unknown identifier types fail validation with the
offending tag, its attributes and the series path it was found under.
Recoverable anomalies are counted and, with --verbose, listed.

Input defaults to stdin.

Examples:
  findingaid validate -i inventory.xml
  findingaid validate -i inventory.xml --verbose
  cat inventory.xml | findingaid validate`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input EAD file (default: stdin)")
	validateCmd.Flags().StringVarP(&validateProfileName, "profile", "p", "", "Conversion profile name")
	validateCmd.Flags().StringVar(&validateProfileFile, "profile-file", "", "Custom profile YAML file")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show detailed information")
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := loadProfile(validateProfileName, validateProfileFile)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	doc, inputName, err := readDocument(validateInput)
	if err != nil {
		return err
	}

	res, err := ead.Parse(doc, &ead.Options{Classifier: p.Classifier(), Logger: slog.Default()})
	if err != nil {
		var se *ead.StructureError
		if errors.As(err, &se) {
			slog.Error("structure error", "level", se.Level, "tag", se.Tag, "path", se.Context.Path())
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Valid: %d files (%d without inventory number), %d diagnostics in %s\n",
		len(res.Files), res.WithoutID(), len(res.Diagnostics), inputName)

	if !validateVerbose {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if len(res.Diagnostics) > 0 {
		fmt.Fprintln(w, "\nLEVEL\tCODE\tTAG\tPATH")
		for _, d := range res.Diagnostics {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Level, d.Code, d.Tag, helpers.TruncateText(d.Path, 60))
		}
	}

	if res.WithoutID() > 0 {
		fmt.Fprintln(w, "\nFILES WITHOUT INVENTORY NUMBER\tPATH")
		for _, f := range res.Files {
			if f.HasID() {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\n", helpers.TruncateText(f.File.Title, 50), helpers.TruncateText(f.Path(), 60))
		}
	}
	return w.Flush()
}
