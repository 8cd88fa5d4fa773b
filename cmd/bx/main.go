package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/oisee/boolexpr/pkg/bx"
	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "bx",
		Short: "Boolean expression tool: simplify, convert, and solve",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				bx.SetLogger(hclog.New(&hclog.LoggerOptions{
					Name:  "bx",
					Level: hclog.Debug,
				}))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log solver diagnostics")

	simplifyCmd := &cobra.Command{
		Use:   "simplify EXPR",
		Short: "Simplify an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExpr(args[0], func(e bx.Expr) error {
				fmt.Println(bx.Simplify(e))
				return nil
			})
		},
	}

	var convTo string
	convCmd := &cobra.Command{
		Use:   "conv EXPR",
		Short: "Convert an expression to a normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := converter(convTo)
			if err != nil {
				return err
			}
			return withExpr(args[0], func(e bx.Expr) error {
				fmt.Println(conv(e))
				return nil
			})
		},
	}
	convCmd.Flags().StringVar(&convTo, "to", "cnf", "Target form: nnf, cnf, dnf, binop, latop, posop, pushdown")

	var prefix string
	tseytinCmd := &cobra.Command{
		Use:   "tseytin EXPR",
		Short: "Tseytin-encode an expression into CNF with auxiliary variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := bx.NewContext()
			return withExprIn(ctx, args[0], func(e bx.Expr) error {
				fmt.Println(bx.Tseytin(e, ctx, prefix))
				return nil
			})
		},
	}
	tseytinCmd.Flags().StringVar(&prefix, "prefix", "a", "Auxiliary variable name prefix")

	satCmd := &cobra.Command{
		Use:   "sat EXPR",
		Short: "Decide satisfiability and print one model",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExpr(strings.Join(args, " "), func(e bx.Expr) error {
				point, ok := bx.Sat(e)
				if !ok {
					fmt.Println("unsat")
					return nil
				}
				fmt.Println("sat")
				printPoint(point)
				return nil
			})
		},
	}

	var limit int
	modelsCmd := &cobra.Command{
		Use:   "models EXPR",
		Short: "Enumerate satisfying assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExpr(strings.Join(args, " "), func(e bx.Expr) error {
				it := bx.NewSatIter(e)
				n := 0
				for point, ok := it.Next(); ok; point, ok = it.Next() {
					fmt.Printf("model %d:\n", n)
					printPoint(point)
					n++
					if limit > 0 && n >= limit {
						break
					}
				}
				fmt.Printf("%d model(s)\n", n)
				return nil
			})
		},
	}
	modelsCmd.Flags().IntVar(&limit, "limit", 0, "Stop after N models (0 = all)")

	dotCmd := &cobra.Command{
		Use:   "dot EXPR",
		Short: "Print the expression DAG in Graphviz dot syntax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExpr(args[0], func(e bx.Expr) error {
				fmt.Println(bx.ToDot(e))
				return nil
			})
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats EXPR",
		Short: "Print depth, size, and support of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExpr(args[0], func(e bx.Expr) error {
				fmt.Printf("depth:  %d\n", bx.Depth(e))
				fmt.Printf("size:   %d\n", bx.Size(e))
				fmt.Printf("atoms:  %d\n", bx.AtomCount(e))
				fmt.Printf("ops:    %d\n", bx.OpCount(e))
				fmt.Printf("degree: %d\n", bx.Degree(e))
				fmt.Printf("cnf:    %v\n", bx.IsCNF(e))
				fmt.Printf("dnf:    %v\n", bx.IsDNF(e))
				names := make([]string, 0)
				for _, x := range bx.Support(e).Slice() {
					names = append(names, x.Name())
				}
				sort.Strings(names)
				fmt.Printf("support: %s\n", strings.Join(names, " "))
				return nil
			})
		},
	}

	equivCmd := &cobra.Command{
		Use:   "equiv EXPR EXPR",
		Short: "Decide whether two expressions compute the same function",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := bx.NewContext()
			a, err := parseExpr(ctx, args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			b, err := parseExpr(ctx, args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}
			if bx.Equiv(a, b) {
				fmt.Println("equivalent")
			} else {
				fmt.Println("not equivalent")
			}
			return nil
		},
	}

	var zeroOK bool
	onehotCmd := &cobra.Command{
		Use:   "onehot N",
		Short: "Print the one-hot constraint over x_0..x_{N-1}",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n int
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 2 {
				return fmt.Errorf("need a count of at least 2, got %q", args[0])
			}
			ctx := bx.NewContext()
			xs := make([]bx.Expr, n)
			for i := range xs {
				xs[i] = ctx.GetVar(fmt.Sprintf("x_%d", i))
			}
			if zeroOK {
				fmt.Println(bx.OneHot0(xs...))
			} else {
				fmt.Println(bx.OneHot(xs...))
			}
			return nil
		},
	}
	onehotCmd.Flags().BoolVar(&zeroOK, "zero", false, "Allow the all-zero assignment (at most one hot)")

	rootCmd.AddCommand(simplifyCmd, convCmd, tseytinCmd, satCmd, modelsCmd,
		dotCmd, statsCmd, equivCmd, onehotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func converter(to string) (func(bx.Expr) bx.Expr, error) {
	switch to {
	case "nnf":
		return bx.ToNNF, nil
	case "cnf":
		return bx.ToCNF, nil
	case "dnf":
		return bx.ToDNF, nil
	case "binop":
		return bx.ToBinOp, nil
	case "latop":
		return bx.ToLatOp, nil
	case "posop":
		return bx.ToPosOp, nil
	case "pushdown":
		return bx.PushDownNot, nil
	}
	return nil, fmt.Errorf("unknown form %q", to)
}

func withExpr(input string, fn func(bx.Expr) error) error {
	return withExprIn(bx.NewContext(), input, fn)
}

func withExprIn(ctx *bx.Context, input string, fn func(bx.Expr) error) error {
	e, err := parseExpr(ctx, input)
	if err != nil {
		return fmt.Errorf("parse %q: %w", input, err)
	}
	return fn(e)
}

func printPoint(point bx.Point) {
	lines := make([]string, 0, len(point))
	for x, c := range point {
		lines = append(lines, fmt.Sprintf("  %s = %s", x.Name(), c))
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Println(line)
	}
}
