package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/wpgen/cli/internal/errors"
	"github.com/wpgen/cli/internal/fieldtype"
	"github.com/wpgen/cli/internal/module"
	"github.com/wpgen/cli/internal/output"
	"github.com/wpgen/cli/internal/render"
	"github.com/wpgen/cli/internal/writer"
)

var (
	moduleOutput        string
	modulePlural        string
	moduleAuthor        string
	modulePluginVersion string
	moduleDescription   string
	moduleTemplates     string
	moduleReadme        bool
)

// NewModuleCmd creates the module command.
func NewModuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module <Name> <field:type>...",
		Short: "Generate a WordPress plugin for one content type",
		Long: fmt.Sprintf(`Generate a WordPress plugin for one custom content type.

The plugin is written to <output>/<slug>/ and replaces any previous
version of the same module. Field types: %s.

Examples:
  # Products with a title and a price
  wp-gen module Produit titre:text prix:number

  # Names with accents and spaces are normalized
  wp-gen module "Offre Spéciale" description:wysiwyg visuel:image

  # Write somewhere else and override the plural label
  wp-gen module Actualité titre:text --plural Actualités -o ./plugins`,
			strings.Join(fieldtype.Tokens(), ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: runModule,
	}

	cmd.Flags().StringVarP(&moduleOutput, "output", "o", "",
		"Output root directory (env: WPGEN_OUTPUT, default \"output\")")
	cmd.Flags().StringVar(&modulePlural, "plural", "",
		"Plural label (defaults to the name with an s appended)")
	cmd.Flags().StringVar(&moduleAuthor, "author", "",
		"Plugin author (env: WPGEN_AUTHOR)")
	cmd.Flags().StringVar(&modulePluginVersion, "plugin-version", "",
		"Plugin version (env: WPGEN_PLUGIN_VERSION, default \"1.0.0\")")
	cmd.Flags().StringVar(&moduleDescription, "description", "",
		"Plugin description")
	cmd.Flags().StringVar(&moduleTemplates, "templates", "",
		"Directory of *.tmpl files overriding the built-in templates")
	cmd.Flags().BoolVar(&moduleReadme, "readme", false,
		"Render the generated README to the terminal")

	return cmd
}

func runModule(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	opts := []module.Option{
		module.WithVersion(cfg.PluginVersion),
		module.WithAuthor(cfg.Author),
		module.WithDescription(moduleDescription),
		module.WithPluralLabel(modulePlural),
	}

	spec, err := module.New(args[0], args[1:], opts...)
	if err != nil {
		return exitError(err)
	}

	log := output.ModuleLogger(spec.Slug())
	log.Debug("module parsed",
		"identifier", spec.Identifier(),
		"singular", spec.LabelSingular(),
		"plural", spec.LabelPlural(),
		"fields", len(spec.Fields()),
	)
	for _, w := range spec.Warnings() {
		log.Warn(w)
	}

	renderer := render.NewRenderer()
	if moduleTemplates != "" {
		if _, err := os.Stat(moduleTemplates); err != nil {
			return exitError(oerrors.NewValidationError(
				fmt.Sprintf("template directory %s: %v", moduleTemplates, err),
				moduleTemplates, "", "Pass an existing directory to --templates."))
		}
		renderer, err = render.NewRendererWithOverrides(os.DirFS(moduleTemplates))
		if err != nil {
			return exitError(err)
		}
	}

	artifacts, err := renderer.Render(spec)
	if err != nil {
		return exitError(err)
	}

	res, err := writer.Write(cfg.Output, spec, artifacts)
	if err != nil {
		return exitError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Generated %s in %s",
		output.FormatNoun(spec.LabelSingular()), res.Dir)))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderFileTree(spec.Slug(), fileEntries(render.PathsFor(spec))))

	if moduleReadme {
		readme := artifacts[len(artifacts)-1]
		rendered, err := output.RenderMarkdown(string(readme.Content), out)
		if err != nil {
			return exitError(err)
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, rendered)
	}

	return nil
}

// fileEntries describes the generated files for the tree printed after
// generation.
func fileEntries(p render.Paths) []output.FileEntry {
	return []output.FileEntry{
		{Path: p.Main, Description: "Plugin entry point"},
		{Path: p.PostType, Description: "Post type and capabilities"},
		{Path: p.FieldGroup, Description: "ACF field group"},
		{Path: p.Shortcode, Description: "List and single shortcodes"},
		{Path: p.Single, Description: "Single item template"},
		{Path: p.Archive, Description: "Archive template"},
		{Path: p.Readme, Description: "Installation notes"},
	}
}

// exitError attaches the exit code matching err's category.
func exitError(err error) error {
	return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
}
