package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortsim/sortsim/sim/render"
	"github.com/sortsim/sortsim/sim/sorting"
)

// algorithmsCmd lists the registered algorithms
var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the available sorting algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		markdown, _ := cmd.Flags().GetBool("markdown")
		style, _ := cmd.Flags().GetString("style")
		if err := listAlgorithms(cmd.OutOrStdout(), markdown, style); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// listAlgorithms prints one name per line, or a rendered markdown table.
func listAlgorithms(out io.Writer, markdown bool, style string) error {
	if !markdown {
		for _, name := range sorting.Names() {
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}
		return nil
	}
	rendered, err := render.RenderMarkdown(render.AlgorithmsMarkdown(sorting.DefaultAlgorithm), style, terminalWidth())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

func init() {
	algorithmsCmd.Flags().Bool("markdown", false, "Render a table with descriptions")
	algorithmsCmd.Flags().String("style", render.StyleAuto, "Markdown style (auto, dark, light, notty, ...)")
}
