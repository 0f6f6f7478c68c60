// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/stimuli"
	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "list the stimulus types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, typ := range stimuli.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), typ)
			}
			return nil
		},
	}
}

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params <type>",
		Short: "list the parameters of a stimulus type with their defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := stimuli.New(expar.NewContext(), args[0], args[0])
			if err != nil {
				return err
			}
			d.Create()
			prefix := d.ParName("")
			for _, p := range d.Ctx.Pars(prefix) {
				v := p.Get().String()
				if p.Kind == expar.Expression {
					v = "=" + p.Expr()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-10v %-8v %s\n", strings.TrimPrefix(p.Name, prefix), p.Kind, p.Type, v)
			}
			return nil
		},
	}
}
