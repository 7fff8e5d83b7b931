package render

import (
	"encoding/json"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/wpgen/cli/internal/errors"
	"github.com/wpgen/cli/internal/module"
)

func newSpec(t *testing.T, name string, decls ...string) *module.Spec {
	t.Helper()
	spec, err := module.New(name, decls)
	require.NoError(t, err)
	return spec
}

func artifactMap(artifacts []Artifact) map[string]string {
	m := make(map[string]string, len(artifacts))
	for _, a := range artifacts {
		m[a.Path] = string(a.Content)
	}
	return m
}

func TestRender_EmptyFieldList(t *testing.T) {
	spec := newSpec(t, "Produit")

	artifacts, err := Render(spec)
	require.Error(t, err)
	assert.Nil(t, artifacts)
	assert.ErrorIs(t, err, oerrors.ErrEmptyFieldList)
	assert.Contains(t, err.Error(), "Produit")

	_, err = Render(nil)
	assert.ErrorIs(t, err, oerrors.ErrEmptyFieldList)
}

func TestRender_ArtifactOrder(t *testing.T) {
	spec := newSpec(t, "Produit", "titre:text", "prix:number")

	artifacts, err := Render(spec)
	require.NoError(t, err)
	require.Len(t, artifacts, 7)

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
		assert.NotEmpty(t, a.Content, "artifact %s is empty", a.Path)
	}

	assert.Equal(t, PathsFor(spec).All(), paths)
	assert.Equal(t, "produit.php", paths[0])
	assert.Equal(t, "includes/cpt-produit.php", paths[1])
	assert.Regexp(t, `^acf-json/group_[0-9a-f]{8}\.json$`, paths[2])
	assert.Equal(t, "includes/shortcode-produit.php", paths[3])
	assert.Equal(t, "templates/single-produit.php", paths[4])
	assert.Equal(t, "templates/archive-produit.php", paths[5])
	assert.Equal(t, "README.md", paths[6])
}

func TestRender_Deterministic(t *testing.T) {
	spec := newSpec(t, "Offre Spéciale", "description:wysiwyg", "visuel:image", "debut:date", "type:select")

	first, err := Render(spec)
	require.NoError(t, err)
	second, err := Render(spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_FieldGroup(t *testing.T) {
	spec := newSpec(t, "Produit", "titre:text", "prix:number")

	artifacts, err := Render(spec)
	require.NoError(t, err)

	var group struct {
		Key    string `json:"key"`
		Title  string `json:"title"`
		Fields []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"fields"`
		Location [][]struct {
			Param    string `json:"param"`
			Operator string `json:"operator"`
			Value    string `json:"value"`
		} `json:"location"`
		ShowInRest int `json:"show_in_rest"`
	}
	require.NoError(t, json.Unmarshal(artifacts[2].Content, &group))

	assert.Equal(t, GroupKey("produit"), group.Key)
	assert.Equal(t, "acf-json/"+group.Key+".json", artifacts[2].Path)
	require.Len(t, group.Fields, 2)
	assert.Equal(t, "titre", group.Fields[0].Name)
	assert.Equal(t, "text", group.Fields[0].Type)
	assert.Equal(t, "prix", group.Fields[1].Name)
	assert.Equal(t, "number", group.Fields[1].Type)
	assert.Equal(t, FieldKey("produit", "titre"), group.Fields[0].Key)
	assert.NotEqual(t, group.Fields[0].Key, group.Fields[1].Key)

	require.Len(t, group.Location, 1)
	require.Len(t, group.Location[0], 1)
	assert.Equal(t, "post_type", group.Location[0][0].Param)
	assert.Equal(t, "produit", group.Location[0][0].Value)
	assert.Equal(t, 1, group.ShowInRest)

	assert.NotContains(t, string(artifacts[2].Content), "modified", "field group must not carry a timestamp")
}

func TestRender_FieldGroupSettings(t *testing.T) {
	spec := newSpec(t, "Offre Spéciale", "visuel:image", "type:select", "debut:date", "corps:wysiwyg")

	artifacts, err := Render(spec)
	require.NoError(t, err)
	content := string(artifacts[2].Content)

	var group map[string]any
	require.NoError(t, json.Unmarshal(artifacts[2].Content, &group))
	fields := group["fields"].([]any)
	require.Len(t, fields, 4)

	image := fields[0].(map[string]any)
	assert.Equal(t, "image", image["type"])
	assert.Equal(t, "array", image["return_format"])
	assert.Equal(t, "medium", image["preview_size"])

	sel := fields[1].(map[string]any)
	assert.Equal(t, map[string]any{"option1": "Option 1", "option2": "Option 2"}, sel["choices"])
	assert.Less(t, strings.Index(content, `"option1"`), strings.Index(content, `"option2"`))

	date := fields[2].(map[string]any)
	assert.Equal(t, "date_picker", date["type"])
	assert.Equal(t, "d/m/Y", date["display_format"])
	assert.Equal(t, "Y-m-d", date["return_format"])

	rich := fields[3].(map[string]any)
	assert.Equal(t, "all", rich["tabs"])
	assert.Equal(t, "full", rich["toolbar"])
	assert.NotContains(t, rich, "choices")

	assert.Contains(t, content, "Offre Spéciale fields", "non-ASCII text is written unescaped")
	assert.Equal(t, "offre_speciale", group["location"].([]any)[0].([]any)[0].(map[string]any)["value"])
}

func TestRender_SingleTemplate(t *testing.T) {
	spec := newSpec(t, "Produit", "titre:text", "prix:number")

	files := artifactMap(mustRender(t, spec))
	single := files["templates/single-produit.php"]

	titre := strings.Index(single, "get_field( 'titre', $post_id )")
	prix := strings.Index(single, "get_field( 'prix', $post_id )")
	require.NotEqual(t, -1, titre)
	require.NotEqual(t, -1, prix)
	assert.Less(t, titre, prix, "fields keep declaration order")

	assert.Contains(t, single, "echo esc_html( $value )")
	assert.Contains(t, single, "number_format_i18n(")
	assert.Contains(t, single, "get_header();")
	assert.Contains(t, single, "get_footer();")
}

func TestRender_DisplayHints(t *testing.T) {
	spec := newSpec(t, "Offre", "corps:wysiwyg", "visuel:image", "debut:date", "notes:textarea", "type:select")

	single := artifactMap(mustRender(t, spec))["templates/single-offre.php"]

	assert.Contains(t, single, "wp_kses_post( $value )")
	assert.Contains(t, single, "wp_get_attachment_image( (int) $value['ID'], 'medium' )")
	assert.Contains(t, single, "date_i18n( get_option( 'date_format' ), strtotime( $value ) )")
	assert.Contains(t, single, "nl2br( esc_html( $value ) )")
	assert.Contains(t, single, "implode( ', ', $value )")
}

func TestRender_ArchiveSummary(t *testing.T) {
	spec := newSpec(t, "Produit", "corps:wysiwyg", "titre:text", "prix:number", "visuel:image", "debut:date")

	archive := artifactMap(mustRender(t, spec))["templates/archive-produit.php"]

	assert.Contains(t, archive, "get_permalink( $post_id )")
	assert.Contains(t, archive, "get_field( 'titre', $post_id )")
	assert.Contains(t, archive, "get_field( 'prix', $post_id )")
	assert.Contains(t, archive, "get_field( 'visuel', $post_id )")
	assert.NotContains(t, archive, "get_field( 'corps', $post_id )", "rich text is left out of listings")
	assert.NotContains(t, archive, "get_field( 'debut', $post_id )", "listings show at most three fields")
	assert.Contains(t, archive, "the_posts_pagination()")
}

func TestRender_MainDescriptorReferences(t *testing.T) {
	spec := newSpec(t, "Offre Spéciale", "description:wysiwyg")
	paths := PathsFor(spec)

	main := artifactMap(mustRender(t, spec))[paths.Main]

	assert.Contains(t, main, "Plugin Name: Offre Spéciale")
	assert.Contains(t, main, "Text Domain: offre-speciale")
	assert.Contains(t, main, "Version:     1.0.0")
	assert.NotContains(t, main, "Author:")
	assert.Contains(t, main, "require_once OFFRE_SPECIALE_PATH . '"+paths.PostType+"';")
	assert.Contains(t, main, "require_once OFFRE_SPECIALE_PATH . '"+paths.Shortcode+"';")
	assert.Contains(t, main, "OFFRE_SPECIALE_PATH . '"+paths.Single+"'")
	assert.Contains(t, main, "OFFRE_SPECIALE_PATH . '"+paths.Archive+"'")
	assert.Contains(t, main, "OFFRE_SPECIALE_PATH . 'acf-json'")
	assert.Contains(t, main, "is_singular( 'offre_speciale' )")
	assert.Contains(t, main, "register_activation_hook( __FILE__, 'offre_speciale_activate' );")
}

func TestRender_MainDescriptorMeta(t *testing.T) {
	spec, err := module.New("Produit", []string{"titre:text"},
		module.WithAuthor("Agence */ Web"),
		module.WithVersion("2.0.0"),
		module.WithDescription("Catalogue\nproduits"),
	)
	require.NoError(t, err)

	main := artifactMap(mustRender(t, spec))["produit.php"]

	assert.Contains(t, main, "Author:      Agence * / Web")
	assert.Contains(t, main, "Description: Catalogue produits")
	assert.Contains(t, main, "define( 'PRODUIT_VERSION', '2.0.0' );")
}

func TestRender_PostType(t *testing.T) {
	spec := newSpec(t, "Produit", "titre:text")

	cpt := artifactMap(mustRender(t, spec))["includes/cpt-produit.php"]

	assert.Contains(t, cpt, "register_post_type(\n\t\t'produit',")
	assert.Contains(t, cpt, "'name'               => __( 'Produits', 'produit' ),")
	assert.Contains(t, cpt, "'singular_name'      => __( 'Produit', 'produit' ),")
	assert.Contains(t, cpt, "'public'          => true,")
	assert.Contains(t, cpt, "'has_archive'     => true,")
	assert.Contains(t, cpt, "'show_in_rest'    => true,")
	assert.Contains(t, cpt, "'rewrite'         => array( 'slug' => 'produit' ),")
	assert.Contains(t, cpt, "'capability_type' => array( 'produit', 'produits' ),")
	assert.Contains(t, cpt, "'map_meta_cap'    => true,")

	for _, c := range capabilities("produit") {
		assert.Contains(t, cpt, "'"+c.Generic+"' => '"+c.Mapped+"',")
	}
	assert.Contains(t, cpt, "$role->add_cap( 'edit_others_produits' );")
	assert.Contains(t, cpt, "$role->add_cap( 'delete_others_produits' );")
	assert.NotContains(t, cpt, "$role->add_cap( 'edit_produit' );", "meta capabilities are not granted")
}

func TestRender_PostTypePluralIdentifier(t *testing.T) {
	spec := newSpec(t, "Services", "titre:text")

	cpt := artifactMap(mustRender(t, spec))["includes/cpt-services.php"]

	assert.Contains(t, cpt, "'capability_type' => array( 'services', 'services_items' ),")
	assert.Contains(t, cpt, "'edit_post' => 'edit_services',")
	assert.Contains(t, cpt, "'edit_posts' => 'edit_services_items',")
	assert.Contains(t, cpt, "$role->add_cap( 'edit_services_items' );")
	assert.NotContains(t, cpt, "$role->add_cap( 'edit_services' );")
}

func TestCapabilities_SingularAndPluralDistinct(t *testing.T) {
	for _, identifier := range []string{"produit", "services", "news", "actualites"} {
		t.Run(identifier, func(t *testing.T) {
			mapped := make(map[string]string)
			for _, c := range capabilities(identifier) {
				if c.Generic == "create_posts" {
					continue
				}
				prev, dup := mapped[c.Mapped]
				assert.False(t, dup, "%s maps both %s and %s", c.Mapped, prev, c.Generic)
				mapped[c.Mapped] = c.Generic
			}
			assert.NotEqual(t, identifier, capabilityPlural(identifier))
		})
	}
}

func TestRender_DigitFirstName(t *testing.T) {
	spec := newSpec(t, "2024 Events", "titre:text")
	paths := PathsFor(spec)
	files := artifactMap(mustRender(t, spec))

	assert.Equal(t, "2024-events.php", paths.Main)

	main := files[paths.Main]
	assert.Contains(t, main, "define( 'WPGEN_2024_EVENTS_PATH', plugin_dir_path( __FILE__ ) );")
	assert.Contains(t, main, "register_activation_hook( __FILE__, 'wpgen_2024_events_activate' );")
	assert.Contains(t, main, "is_singular( '2024_events' )")

	cpt := files[paths.PostType]
	assert.Contains(t, cpt, "function wpgen_2024_events_register_post_type() {")
	assert.Contains(t, cpt, "register_post_type(\n\t\t'2024_events',")

	shortcodes := files[paths.Shortcode]
	assert.Contains(t, shortcodes, "add_shortcode( '2024-events_list', 'wpgen_2024_events_shortcode_list' );")

	for path, content := range files {
		assert.NotRegexp(t, `function 2024`, content, path)
	}
}

func TestRender_Shortcodes(t *testing.T) {
	spec := newSpec(t, "Offre Spéciale", "description:wysiwyg")

	sc := artifactMap(mustRender(t, spec))["includes/shortcode-offre-speciale.php"]

	assert.Contains(t, sc, "add_shortcode( 'offre-speciale_list', 'offre_speciale_shortcode_list' );")
	assert.Contains(t, sc, "add_shortcode( 'offre-speciale_single', 'offre_speciale_shortcode_single' );")
	assert.Contains(t, sc, "'post_type'      => 'offre_speciale',")
	assert.Contains(t, sc, "'offre_speciale' !== $post->post_type")
	assert.Contains(t, sc, "if ( ! $id ) {\n\t\treturn '';")
	assert.Contains(t, sc, "wp_reset_postdata();")
}

func TestRender_Readme(t *testing.T) {
	spec := newSpec(t, "Produit", "titre:text", "prix:number")
	paths := PathsFor(spec)

	readme := artifactMap(mustRender(t, spec))["README.md"]

	for _, p := range paths.All() {
		assert.Contains(t, readme, "`"+p+"`")
	}
	assert.Contains(t, readme, "| `titre` | Titre | text |")
	assert.Contains(t, readme, "| `prix` | Prix | number |")
	assert.Contains(t, readme, "wp-content/plugins/")
	assert.Contains(t, readme, "Advanced Custom Fields")
	assert.Contains(t, readme, "[produit_list]")
	assert.NotContains(t, readme, "<?php")
}

func TestRender_EscapesPHPStrings(t *testing.T) {
	spec := newSpec(t, "L'Atelier", "titre:text")

	files := artifactMap(mustRender(t, spec))
	cpt := files["includes/cpt-latelier.php"]

	assert.Contains(t, cpt, `__( 'L\'Atelier', 'latelier' )`)
	assert.NotContains(t, cpt, `'L'Atelier'`)
}

func TestNewRendererWithOverrides(t *testing.T) {
	spec := newSpec(t, "Produit", "titre:text")

	t.Run("override replaces template", func(t *testing.T) {
		r, err := NewRendererWithOverrides(fstest.MapFS{
			"README.md.tmpl": {Data: []byte("custom readme for {{.Slug}}\n")},
		})
		require.NoError(t, err)

		files := artifactMap(mustRenderWith(t, r, spec))
		assert.Equal(t, "custom readme for produit\n", files["README.md"])
		assert.Contains(t, files["produit.php"], "Plugin Name: Produit", "other templates are untouched")

		// The default renderer is not affected by the override.
		assert.NotEqual(t, files["README.md"], artifactMap(mustRender(t, spec))["README.md"])
	})

	t.Run("override partial", func(t *testing.T) {
		r, err := NewRendererWithOverrides(fstest.MapFS{
			"partials.tmpl": {Data: []byte(`{{define "field"}}[{{.Name}}]{{end}}{{define "item"}}<item>{{end}}{{define "field-present"}}{{end}}{{define "field-value"}}{{end}}`)},
		})
		require.NoError(t, err)

		single := artifactMap(mustRenderWith(t, r, spec))["templates/single-produit.php"]
		assert.Contains(t, single, "[titre]")
	})

	t.Run("empty directory uses defaults", func(t *testing.T) {
		r, err := NewRendererWithOverrides(fstest.MapFS{})
		require.NoError(t, err)
		assert.Equal(t, mustRender(t, spec), mustRenderWith(t, r, spec))
	})

	t.Run("unknown template name", func(t *testing.T) {
		_, err := NewRendererWithOverrides(fstest.MapFS{
			"footer.php.tmpl": {Data: []byte("x")},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
		assert.Contains(t, err.Error(), "footer.php.tmpl")
	})

	t.Run("invalid template syntax", func(t *testing.T) {
		_, err := NewRendererWithOverrides(fstest.MapFS{
			"README.md.tmpl": {Data: []byte("{{.Slug")},
		})
		require.Error(t, err)
	})
}

func TestPathsFor_CollidingNames(t *testing.T) {
	a := PathsFor(newSpec(t, "Produit", "titre:text"))
	b := PathsFor(newSpec(t, "produit", "titre:text"))
	assert.Equal(t, a, b)
}

func mustRender(t *testing.T, spec *module.Spec) []Artifact {
	t.Helper()
	return mustRenderWith(t, NewRenderer(), spec)
}

func mustRenderWith(t *testing.T, r *Renderer, spec *module.Spec) []Artifact {
	t.Helper()
	artifacts, err := r.Render(spec)
	require.NoError(t, err)
	return artifacts
}
