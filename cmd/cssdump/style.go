package main

import (
	"errors"
	"io"
	"os"

	"github.com/npillmayer/csscascade/cascade"
	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/csscascade/styledtree"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var defaultDumpProperties = []string{"color", "background-color", "font-size", "margin-top"}

func newStyleCmd(flags *rootFlags) *cobra.Command {
	var props []string

	cmd := &cobra.Command{
		Use:   "style <html-file>",
		Short: "Style an HTML document and dump the computed styles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]css.PropertyID, 0, len(props))
			for _, name := range props {
				prop, err := property(name)
				if err != nil {
					return err
				}
				ids = append(ids, prop.ID)
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			doc, err := html.Parse(f)
			if err != nil {
				return err
			}
			var parent *cascade.Cascade
			if flags.conf != nil {
				if parent, err = flags.conf.Cascade(); err != nil {
					return err
				}
			}
			c, err := styledtree.DocumentCascade(doc, parent)
			if err != nil {
				return err
			}
			root := styledtree.Style(doc, c)
			if root == nil {
				return errors.New("document has no elements")
			}
			defer root.Release()
			_, err = io.WriteString(cmd.OutOrStdout(), styledtree.Dump(root, ids...))
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&props, "property", "p", defaultDumpProperties, "Properties to dump")

	return cmd
}
