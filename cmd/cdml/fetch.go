/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voedger/schemacorpus/pkg/objdef"
)

func newFetchCmd() *cobra.Command {
	params := cdmlParams{}
	var traits, attributes bool
	cmd := &cobra.Command{
		Use:   "fetch <object path>",
		Short: "fetch object by corpus path, optionally print its resolved traits and attributes",
		Args:  cobra.ExactArgs(1),
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

			obj, err := c.FetchObject(cmd.Context(), args[0], "", nil)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, obj.ObjectType(), obj.AtCorpusPath())
			if traits {
				printTraits(w, indent, c.ResolveTraits(obj, nil))
			}
			if e, ok := obj.(*objdef.EntityDef); ok && attributes {
				printAttributes(w, c.ResolveEntity(e, nil))
			}
			return checkEvents(events)
		},
	}
	initGlobalFlags(cmd, &params)
	cmd.Flags().BoolVar(&traits, "traits", false, "print resolved traits")
	cmd.Flags().BoolVar(&attributes, "attributes", false, "print resolved entity attributes")
	return cmd
}

func printTraits(w io.Writer, prefix string, set *objdef.ResolvedTraitSet) {
	for _, t := range set.All() {
		args := make([]string, 0, len(t.Params))
		for i, p := range t.Params {
			args = append(args, p+"="+formatValue(t.Values[i]))
		}
		fmt.Fprintf(w, "%s%s(%s)\n", prefix, t.TraitName, strings.Join(args, ", "))
	}
}

func printAttributes(w io.Writer, re *objdef.ResolvedEntity) {
	for _, a := range re.Attributes {
		fmt.Fprintln(w, indent+a.Name, a.AttCtx.AtPath())
		printTraits(w, indent+indent, a.Traits)
	}
}

func formatValue(v objdef.RefValue) string {
	switch v.Kind() {
	case objdef.RefValueKind_Object:
		if ce, ok := v.Object().(*objdef.ConstantEntityDef); ok {
			rows := make([]string, 0, len(ce.Values))
			for _, row := range ce.Values {
				rows = append(rows, "["+strings.Join(row, " ")+"]")
			}
			return strings.Join(rows, " ")
		}
		return v.Object().AtCorpusPath()
	case objdef.RefValueKind_Null:
		return "null"
	}
	return v.Text()
}
