// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/vsalvino/agent/src/logger"
	"github.com/vsalvino/agent/src/phrase"
)

// newPhraseCommand builds the "phrase" subcommand: print one phrase, or the
// full catalogue as a table.
func newPhraseCommand(log logger.Logger) *cobra.Command {
	var (
		random bool
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "phrase",
		Short: "Print the agent's catch-phrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			p := phrase.New()
			if list {
				log.Println(renderPhraseTable(p.List()))
				return nil
			}

			log.Println(p.Get(random))
			return nil
		},
	}

	cmd.Flags().BoolVar(&random, "random", false, "print a random phrase each time")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "print the full phrase catalogue as a table")

	return cmd
}

// renderPhraseTable renders the catalogue as a markdown table.
// The default phrase is the first row.
func renderPhraseTable(phrases []string) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Phrase", "Default"})

	var rows [][]string
	for i, p := range phrases {
		def := ""
		if i == 0 {
			def = "yes"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), p, def})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
