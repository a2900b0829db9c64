package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/csscascade/css"
	"github.com/spf13/cobra"
)

func newValueCmd() *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "value <property> <text>",
		Short: "Parse a property value and print it in canonical form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prop, err := property(args[0])
			if err != nil {
				return err
			}
			v, err := css.ParseValue(prop.ID, args[1])
			if err != nil {
				return err
			}
			defer css.Unref(v)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s%s\n", prop.Name, css.Print(v), swatch(v))
			if tree {
				io.WriteString(out, css.Dump(v))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&tree, "tree", "t", false, "Dump the structure of the value")

	return cmd
}

func property(name string) (*css.Property, error) {
	prop, ok := css.PropertyByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", css.ErrUnknownProperty, name)
	}
	return prop, nil
}
