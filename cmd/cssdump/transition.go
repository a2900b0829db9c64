package main

import (
	"fmt"

	"github.com/npillmayer/csscascade/cascade"
	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/csscascade/style"
	"github.com/spf13/cobra"
)

func newTransitionCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "transition <property> <from> <to>",
		Short: "Print the intermediate values of a transition",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			prop, err := property(args[0])
			if err != nil {
				return err
			}
			if steps < 1 {
				return fmt.Errorf("steps must be positive, have %d", steps)
			}
			from, err := computed(prop.ID, args[1])
			if err != nil {
				return err
			}
			defer from.Release()
			to, err := computed(prop.ID, args[2])
			if err != nil {
				return err
			}
			defer to.Release()
			out := cmd.OutOrStdout()
			start, end := from.Value(prop.ID), to.Value(prop.ID)
			for i := 0; i <= steps; i++ {
				progress := float64(i) / float64(steps)
				v := css.Interpolate(start, end, prop.ID, progress)
				note := ""
				if v == nil {
					note = " (discrete)"
					if progress < 0.5 {
						v = css.Ref(start)
					} else {
						v = css.Ref(end)
					}
				}
				fmt.Fprintf(out, "%5.3f  %s%s%s\n", progress, css.Print(v), swatch(v), note)
				css.Unref(v)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 4, "Number of steps")

	return cmd
}

// computed computes a style with a single declaration for property id.
func computed(id css.PropertyID, text string) (*style.Static, error) {
	v, err := css.ParseValue(id, text)
	if err != nil {
		return nil, err
	}
	defer css.Unref(v)
	l := cascade.NewLookup()
	defer l.Release()
	l.WithPriority(cascade.PriorityApplication, func(l *cascade.Lookup) {
		l.Set(id, v)
	})
	return style.Compute(l, nil, nil), nil
}
