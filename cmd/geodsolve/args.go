package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

// run executes root with args. Negative coordinates may be given as plain
// positional arguments.
func run(root *cobra.Command, args []string) error {
	root.SetArgs(positionalNumbers(root, args))
	return root.Execute()
}

// positionalNumbers rewrites args so that pflag does not read a negative
// number such as -73.78 as a cluster of shorthand flags. When one is
// present, every number that is not a flag value moves behind a "--"
// terminator, keeping its order among the positional arguments. Flags and
// subcommand names stay in front.
func positionalNumbers(root *cobra.Command, args []string) []string {
	cmd := root
	var head, tail []string
	negative := false
loop:
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			tail = append(tail, args[i+1:]...)
			break loop
		case isNumber(a):
			negative = negative || a[0] == '-'
			tail = append(tail, a)
		case len(a) > 1 && a[0] == '-':
			head = append(head, a)
			if takesValue(cmd, a) && i+1 < len(args) {
				i++
				head = append(head, args[i])
			}
		default:
			if sub := subcommand(cmd, a); sub != nil && len(tail) == 0 {
				cmd = sub
				head = append(head, a)
				continue
			}
			tail = append(tail, a)
		}
	}
	if !negative {
		return args
	}
	return append(append(head, "--"), tail...)
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func subcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return c
		}
	}
	return nil
}

// takesValue reports whether the flag token a consumes the next argument.
func takesValue(cmd *cobra.Command, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	name := strings.TrimLeft(a, "-")
	for _, fs := range []*flag.FlagSet{
		cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags(), flag.CommandLine,
	} {
		f := fs.Lookup(name)
		if f == nil && len(name) == 1 {
			f = fs.ShorthandLookup(name)
		}
		if f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}
