/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/voedger/schemacorpus/pkg/corpus"
	"github.com/voedger/schemacorpus/pkg/objdef"
)

func newIndexCmd() *cobra.Command {
	params := cdmlParams{}
	cmd := &cobra.Command{
		Use:   "index <document path>...",
		Short: "load and index documents with their imports, report diagnostics",
		Args:  cobra.MinimumNArgs(1),
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

			for _, path := range args {
				if _, err := c.FetchObject(cmd.Context(), path, "", nil); err != nil {
					return err
				}
			}
			printDocuments(cmd.OutOrStdout(), c, args)
			return checkEvents(events)
		},
	}
	initGlobalFlags(cmd, &params)
	return cmd
}

// Prints index state and declared entities of documents
func printDocuments(w io.Writer, c *corpus.Corpus, paths []string) {
	for _, path := range paths {
		doc, ok := c.Document(path)
		if !ok {
			continue
		}
		fmt.Fprintln(w, doc.AtCorpusPath(), doc.IndexState())
		for _, e := range entitiesOf(doc) {
			fmt.Fprintln(w, indent+e.EntityName)
		}
	}
}

// Returns entities of document or the entity itself
func entitiesOf(obj objdef.IObject) (entities []*objdef.EntityDef) {
	switch o := obj.(type) {
	case *objdef.Document:
		for _, def := range o.Definitions {
			if e, ok := def.(*objdef.EntityDef); ok {
				entities = append(entities, e)
			}
		}
	case *objdef.EntityDef:
		entities = append(entities, o)
	}
	return entities
}
