// Command bigu exercises the bigu façade from the command line: one
// subcommand each for add, sub, mul, div, mod, divmod, pow and isqrt,
// decimal strings in, decimal strings out. It is a harness over the library, not part of its contract.
package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/basenine/bigu/bigu"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigu",
		Short: "Arbitrary-precision unsigned integer arithmetic",
	}

	var groupSep string

	parse := func(s string) (bigu.BigU, error) {
		v, err := bigu.FromDecimalString(s)
		if err != nil {
			return bigu.BigU{}, fmt.Errorf("parsing %q: %w", s, err)
		}
		return v, nil
	}
	render := func(v bigu.BigU) string {
		if groupSep != "" {
			return v.GroupedString(groupSep)
		}
		return v.String()
	}
	warnAndWrap := func(op string, args []string, err error) error {
		fields := logrus.Fields{"op": op, "x": args[0]}
		if len(args) > 1 {
			fields["y"] = args[1]
		}
		logrus.WithFields(fields).Warn(err)
		return fmt.Errorf("%s: %w", op, err)
	}

	addCmd := &cobra.Command{
		Use:   "add X Y",
		Short: "Print X + Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parse(args[0])
			if err != nil {
				return err
			}
			y, err := parse(args[1])
			if err != nil {
				return err
			}
			fmt.Println(render(bigu.Add(x, y)))
			return nil
		},
	}

	subCmd := &cobra.Command{
		Use:   "sub X Y",
		Short: "Print X - Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parse(args[0])
			if err != nil {
				return err
			}
			y, err := parse(args[1])
			if err != nil {
				return err
			}
			r, err := bigu.Sub(x, y)
			if err != nil {
				return warnAndWrap("sub", args, err)
			}
			fmt.Println(render(r))
			return nil
		},
	}

	mulCmd := &cobra.Command{
		Use:   "mul X Y",
		Short: "Print X * Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parse(args[0])
			if err != nil {
				return err
			}
			y, err := parse(args[1])
			if err != nil {
				return err
			}
			fmt.Println(render(bigu.Mul(x, y)))
			return nil
		},
	}

	divCmd := &cobra.Command{
		Use:   "div X Y",
		Short: "Print floor(X / Y)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parse(args[0])
			if err != nil {
				return err
			}
			y, err := parse(args[1])
			if err != nil {
				return err
			}
			q, err := bigu.FloorDiv(x, y)
			if err != nil {
				return warnAndWrap("div", args, err)
			}
			fmt.Println(render(q))
			return nil
		},
	}

	modCmd := &cobra.Command{
		Use:   "mod X Y",
		Short: "Print X mod Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parse(args[0])
			if err != nil {
				return err
			}
			y, err := parse(args[1])
			if err != nil {
				return err
			}
			r, err := bigu.FloorMod(x, y)
			if err != nil {
				return warnAndWrap("mod", args, err)
			}
			fmt.Println(render(r))
			return nil
		},
	}

	divmodCmd := &cobra.Command{
		Use:   "divmod X Y",
		Short: "Print floor(X / Y) and X mod Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parse(args[0])
			if err != nil {
				return err
			}
			y, err := parse(args[1])
			if err != nil {
				return err
			}
			q, r, err := bigu.DivMod(x, y)
			if err != nil {
				return warnAndWrap("divmod", args, err)
			}
			fmt.Printf("%s %s\n", render(q), render(r))
			return nil
		},
	}

	powCmd := &cobra.Command{
		Use:   "pow X N",
		Short: "Print X ^ N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parse(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing exponent %q: %w", args[1], err)
			}
			r, err := bigu.Pow(x, n)
			if err != nil {
				return warnAndWrap("pow", args, err)
			}
			fmt.Println(render(r))
			return nil
		},
	}

	isqrtCmd := &cobra.Command{
		Use:   "isqrt X",
		Short: "Print floor(sqrt(X))",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parse(args[0])
			if err != nil {
				return err
			}
			fmt.Println(render(bigu.Isqrt(x)))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&groupSep, "group-sep", "", "group output digits every 3 with this separator")
	rootCmd.AddCommand(addCmd, subCmd, mulCmd, divCmd, modCmd, divmodCmd, powCmd, isqrtCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
