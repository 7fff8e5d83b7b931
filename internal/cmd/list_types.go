package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpgen/cli/internal/fieldtype"
	"github.com/wpgen/cli/internal/output"
)

var listTypesLong bool

// NewListTypesCmd creates the list-types command.
func NewListTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-types",
		Short: "List the supported field types",
		Long: `List the field type tokens accepted in name:type declarations, one per line.

With --long, print a table with the ACF type, schema kind and display of
each token.`,
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: runListTypes,
	}

	cmd.Flags().BoolVarP(&listTypesLong, "long", "l", false, "Show details for each type")

	return cmd
}

func runListTypes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !listTypesLong {
		for _, token := range fieldtype.Tokens() {
			fmt.Fprintln(out, token)
		}
		return nil
	}

	t := output.NewTable("TOKEN", "ACF TYPE", "KIND", "DISPLAY", "DESCRIPTION")
	for _, d := range fieldtype.All() {
		t.Row(d.Token, d.ACFType, string(d.SchemaKind), string(d.DisplayHint), d.Label)
	}
	fmt.Fprintln(out, t.String())

	return nil
}
