/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRelationshipsCmd() *cobra.Command {
	params := cdmlParams{}
	var incoming bool
	cmd := &cobra.Command{
		Use:     "relationships <document or entity path>...",
		Aliases: []string{"rel"},
		Short:   "calculate entity graph and print relationships of entities",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := readConfig(params)
			if err != nil {
				return err
			}
			c, events, closer, err := newCorpus(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if e := closer.Close(); err == nil {
					err = e
				}
			}()

			if err := c.CalculateEntityGraph(cmd.Context(), args...); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, path := range args {
				obj, err := c.FetchObject(cmd.Context(), path, "", nil)
				if err != nil {
					return err
				}
				for _, e := range entitiesOf(obj) {
					rels := c.FetchOutgoingRelationships(e.AtCorpusPath())
					if incoming {
						rels = c.FetchIncomingRelationships(e.AtCorpusPath())
					}
					for _, r := range rels {
						fmt.Fprintln(w, r)
					}
				}
			}
			return checkEvents(events)
		},
	}
	initGlobalFlags(cmd, &params)
	cmd.Flags().BoolVar(&incoming, "incoming", false, "print relationships to the entities instead of relationships from them")
	return cmd
}
