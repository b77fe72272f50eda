package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zerohexer/cspnet/internal/content"
	"github.com/zerohexer/cspnet/internal/handlers"
	"github.com/zerohexer/cspnet/internal/rendering"
	"github.com/zerohexer/cspnet/internal/router"
	"github.com/zerohexer/cspnet/internal/site"
	"github.com/zerohexer/cspnet/internal/view"
	"github.com/zerohexer/cspnet/web/src/templates/layouts"
)

var renderContent string

var renderCmd = &cobra.Command{
	Use:   "render [route]",
	Short: "Render a page to stdout as static HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		route := router.Home
		if len(args) == 1 {
			r, err := router.Parse(args[0])
			if err != nil {
				return err
			}
			route = r
		}

		store, err := content.NewStore(afero.NewOsFs(), renderContent)
		if err != nil {
			return err
		}

		a := site.NewApp("render", store.Site(), nil, nil)
		a.HandleNavigation(cmd.Context(), string(route))

		title := layouts.CalculateTitle(a.Title(), store.Site().Title)
		page := layouts.Base(title, handlers.StylesheetPath, view.AdaptGomponentToTempl(a.Shell()))
		out, err := rendering.NewUniversalRenderer().RenderComponent(cmd.Context(), page)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderContent, "content", "", "YAML content file (defaults to the built-in content)")
	rootCmd.AddCommand(renderCmd)
}
