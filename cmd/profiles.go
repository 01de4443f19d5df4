package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/findingaid/helpers"
	"github.com/lehigh-university-libraries/findingaid/mapping"
	"github.com/lehigh-university-libraries/findingaid/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage conversion profiles",
	Long: `List, inspect and create conversion profiles.

Profiles set the subseries depth, the null marker, the delimiter and the
unitid types used for inventory numbers and handles. Embedded profiles ship
with the binary; user profiles live in ~/.findingaid/profiles/ and take
precedence over embedded ones with the same name.

Examples:
  findingaid profiles list
  findingaid profiles show deep
  findingaid profiles init my-archive --from deep
  findingaid profiles delete my-archive`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE:  runProfilesList,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a profile merged over the defaults",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesShow,
}

var profilesInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a user profile from an embedded one",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesInit,
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a user profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesDelete,
}

var (
	profileInitFrom  string
	profileInitForce bool
)

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesInitCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)

	profilesInitCmd.Flags().StringVar(&profileInitFrom, "from", mapping.DefaultProfileName, "Embedded profile to copy")
	profilesInitCmd.Flags().BoolVar(&profileInitForce, "force", false, "Overwrite an existing user profile")
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	registry, err := mapping.NewProfileRegistry()
	if err != nil {
		return err
	}
	userProfiles, err := profile.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOURCE\tDEPTH\tDESCRIPTION")
	fmt.Fprintln(w, "----\t------\t-----\t-----------")

	for _, name := range userProfiles {
		p, err := profile.Load(name)
		if err != nil {
			fmt.Fprintf(w, "%s\tuser\t?\terror loading\n", name)
			continue
		}
		fmt.Fprintf(w, "%s\tuser\t%d\t%s\n", name, mapping.Resolve(p).Depth(), helpers.TruncateText(p.Description, 50))
	}
	for _, name := range registry.List() {
		p, _ := registry.Get(name)
		fmt.Fprintf(w, "%s\tembedded\t%d\t%s\n", name, mapping.Resolve(p).Depth(), helpers.TruncateText(p.Description, 50))
	}

	return w.Flush()
}

func runProfilesShow(cmd *cobra.Command, args []string) error {
	p, err := loadProfile(args[0], "")
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	fmt.Print(string(out))
	return nil
}

func runProfilesInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	if profile.Exists(name) && !profileInitForce {
		return fmt.Errorf("profile %q already exists (use --force to overwrite)", name)
	}

	registry, err := mapping.NewProfileRegistry()
	if err != nil {
		return err
	}
	base, ok := registry.Get(profileInitFrom)
	if !ok {
		return fmt.Errorf("unknown embedded profile: %s", profileInitFrom)
	}

	p := mapping.Resolve(base)
	p.Name = name
	p.Description = fmt.Sprintf("Copied from %s: %s", profileInitFrom, base.Description)
	if err := profile.Save(p); err != nil {
		return err
	}

	path, _ := profile.ProfilePath(name)
	fmt.Printf("Created profile %s at %s\n", name, path)
	return nil
}

func runProfilesDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := profile.Delete(name); err != nil {
		return err
	}
	fmt.Printf("Deleted profile %s\n", name)
	return nil
}
