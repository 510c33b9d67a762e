package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/numeric"
)

func newTokensCmd(o *options) *cobra.Command {
	var quote bool
	cmd := &cobra.Command{
		Use:   "tokens [expr...]",
		Short: "Print the tokens of expressions",
		Long: `tokens prints the tokens each expression splits into, one expression per
line. With no arguments, expressions are read from stdin.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := o.setup(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				s := bufio.NewScanner(cmd.InOrStdin())
				for s.Scan() {
					args = append(args, s.Text())
				}
				if err := s.Err(); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			for _, src := range args {
				toks := numeric.Tokenize(src)
				logger.Debug("tokenized", "expr", src, "count", len(toks))
				if quote {
					for i, t := range toks {
						toks[i] = strconv.Quote(t)
					}
				}
				fmt.Fprintln(out, strings.Join(toks, " "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "quote each token")
	return cmd
}
