package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/crimezones/internal/gazetteer"
	"github.com/ppiankov/crimezones/internal/model"
)

var listZone string

// gazetteerCmd represents the gazetteer command
var gazetteerCmd = &cobra.Command{
	Use:   "gazetteer",
	Short: "Inspect the neighborhood gazetteer",
	Long: `Inspect the neighborhood gazetteer used to resolve names found in bulletins.

Example:
  crimezones gazetteer list --zone Norte
  crimezones gazetteer resolve "Pça 14 de Janeiro" "Cidade Nova 2"`,
}

var gazetteerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gazetteer entries in resolution order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGazetteer()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tZONE\tLAT\tLNG\tRADIUS")
		count := 0
		for _, e := range g.Entries() {
			if listZone != "" && !strings.EqualFold(string(e.Zone), listZone) {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%dm\n", e.Key, e.Zone, e.Lat, e.Lng, e.RadiusMeters)
			count++
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "\n%d entries\n", count)
		return nil
	},
}

var gazetteerResolveCmd = &cobra.Command{
	Use:   "resolve <name...>",
	Short: "Show which entry and matching tier a raw name resolves to",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGazetteer()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		r := gazetteer.NewResolver(g, gazetteer.Options{
			ContainmentMinLen: cfg.Extraction.ContainmentMinLen,
			FuzzyMinLen:       cfg.Extraction.FuzzyMinLen,
			FuzzyThreshold:    cfg.Extraction.FuzzyThreshold,
		})

		unresolved := 0
		for _, name := range args {
			m, ok := r.Match(name)
			if !ok {
				unresolved++
				fmt.Printf("✗ %q: not found\n", name)
				continue
			}
			fmt.Printf("✓ %q -> %s (%s, %s)\n", name, m.Entry.Key, m.Entry.Zone, m.Tier)
		}
		if unresolved > 0 {
			return fmt.Errorf("%d of %d names not found", unresolved, len(args))
		}
		return nil
	},
}

func loadGazetteer() (*gazetteer.Gazetteer, error) {
	path := gazetteerFile
	if path == "" {
		path = viper.GetString("extraction.gazetteer_file")
	}
	return gazetteer.Load(path)
}

func init() {
	rootCmd.AddCommand(gazetteerCmd)
	gazetteerCmd.AddCommand(gazetteerListCmd)
	gazetteerCmd.AddCommand(gazetteerResolveCmd)

	gazetteerCmd.PersistentFlags().StringVar(&gazetteerFile, "gazetteer", "", "YAML gazetteer (default: built-in Manaus table)")
	gazetteerListCmd.Flags().StringVar(&listZone, "zone", "", "only entries of this zone ("+zoneNames()+")")
}

func zoneNames() string {
	names := make([]string, len(model.ZoneOrder))
	for i, z := range model.ZoneOrder {
		names[i] = string(z)
	}
	return strings.Join(names, ", ")
}
