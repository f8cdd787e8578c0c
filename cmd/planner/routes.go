package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/JaimeStill/load-planner/pkg/web"
	"github.com/JaimeStill/load-planner/web/app"
	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	var (
		visualizerOnly bool
		history        string
		basePath       string
	)

	cmd := &cobra.Command{
		Use:   "routes [path...]",
		Short: "Print the view route table",
		Long: `Routes prints the browser application's view table in declaration
order. Any path arguments are resolved against the table and reported with
the view they match.`,
		Example: `  planner routes
  planner routes --visualizer-only /report
  planner routes --history hash /visualizer`,
		RunE: func(cmd *cobra.Command, args []string) error {
			vr, err := web.NewViewRouter(web.ViewRouterConfig{
				History:  web.HistoryMode(history),
				BasePath: basePath,
				Views:    app.Views(!visualizerOnly),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tNAME\tVIEW\tHREF")
			for _, v := range vr.Views() {
				name := v.Name
				if name == "" {
					name = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Route, name, v.Title, vr.HrefPath(v.Route))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(args) > 0 {
				fmt.Fprintln(out)
			}
			for _, path := range args {
				if v, ok := vr.Resolve(path); ok {
					fmt.Fprintf(out, "%s -> %s\n", path, v.Title)
				} else {
					fmt.Fprintf(out, "%s -> not found\n", path)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&visualizerOnly, "visualizer-only", false, "Use the table without the report view")
	cmd.Flags().StringVar(&history, "history", string(web.HistoryWeb), "History mode: web or hash")
	cmd.Flags().StringVar(&basePath, "base-path", "/app", "Mount path of the application")

	return cmd
}
