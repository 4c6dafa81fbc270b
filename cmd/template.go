// Package cmd — template command.
// Renders the fixed about/requirements/benefits layout and prints it.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/gaurav-prasanna/descpipe/core/describe"
)

var (
	flagAbout        string
	flagRequirements string
	flagBenefits     string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Render the default about/requirements/benefits template",
	Long: `Template renders three free-text fields into a fixed HTML layout.
Every field is escaped. A value starting with "@" is read from that file.

Examples:
  descpipe template --about "We build tools." --requirements "- Go" --benefits "- Remote"
  descpipe template --product --about @about.txt --benefits @perks.txt`,
	Args: cobra.NoArgs,
	RunE: runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVar(&flagAbout, "about", "", "About text, or @file")
	templateCmd.Flags().StringVar(&flagRequirements, "requirements", "", "Requirement lines, or @file")
	templateCmd.Flags().StringVar(&flagBenefits, "benefits", "", "Benefit lines, or @file")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	domain, err := selectDomain()
	if err != nil {
		return err
	}

	var fields core.TemplateFields
	for _, f := range []struct {
		dst *string
		val string
	}{
		{&fields.About, flagAbout},
		{&fields.Requirements, flagRequirements},
		{&fields.Benefits, flagBenefits},
	} {
		if *f.dst, err = readFieldValue(f.val); err != nil {
			return err
		}
	}

	logs.GetLogger("cli").Debug("rendering template", "domain", domain.Name)
	fmt.Fprintln(cmd.OutOrStdout(), describe.DefaultTemplate(fields, domain))
	return nil
}

// readFieldValue returns value, or the contents of the file it names when
// it starts with "@".
func readFieldValue(value string) (string, error) {
	path, ok := strings.CutPrefix(value, "@")
	if !ok {
		return value, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
