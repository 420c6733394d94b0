package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"beatplace/internal/tracks"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the event-grid rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printTracks(cmd.OutOrStdout(), tracks.NewTable(), cfg.ExtendedTracks)
	},
}

func init() {
	tracksCmd.Flags().BoolVar(&flags.Extended, "extended", false, "Include extended lighting tracks")
}

func printTracks(w io.Writer, tbl *tracks.Table, extended bool) error {
	view := tbl.Visible(extended)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tSIDE\tLABEL")
	for _, id := range view.IDs() {
		t, _ := view.Lookup(id)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", id, t.Kind, t.Side, t.Label)
	}
	return tw.Flush()
}
