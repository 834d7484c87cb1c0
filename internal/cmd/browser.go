package cmd

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/basecamp/cookie-composer/internal/browser"
	"github.com/basecamp/cookie-composer/pkg/cookie"
)

var ErrNoScript = errors.New("a script file or --eval is required")

type browserCommand struct {
	cmd     *cobra.Command
	cookies []string
	eval    string
	parsed  bool
}

func newBrowserCommand() *browserCommand {
	browserCommand := &browserCommand{}
	browserCommand.cmd = &cobra.Command{
		Use:     "browser [script]",
		Short:   "Run a script against a simulated document and print its cookies",
		PreRunE: browserCommand.preRun,
		RunE:    browserCommand.run,
		Args:    cobra.MaximumNArgs(1),
	}

	browserCommand.cmd.Flags().StringArrayVar(&browserCommand.cookies, "cookie", []string{}, "Assign to document.cookie before the script runs (may be repeated)")
	browserCommand.cmd.Flags().StringVarP(&browserCommand.eval, "eval", "e", "", "Script source to run")
	browserCommand.cmd.Flags().BoolVar(&browserCommand.parsed, "parsed", false, "Print the decoded cookies as a table")

	return browserCommand
}

func (c *browserCommand) preRun(cmd *cobra.Command, args []string) error {
	if c.eval == "" && len(args) == 0 {
		return ErrNoScript
	}
	return nil
}

func (c *browserCommand) run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	doc, err := browser.NewDocument(browser.DocumentOptions{Output: out})
	if err != nil {
		return err
	}

	for _, seed := range c.cookies {
		doc.SetCookie(seed)
	}

	script := c.eval
	if len(args) > 0 {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		script = string(source)
	}

	err = doc.Run(script)
	if err != nil {
		return err
	}

	if !c.parsed {
		fmt.Fprintf(out, "document.cookie: %s\n", doc.Cookie())
		return nil
	}

	values := cookie.Parse(cookie.Context{Document: doc})

	table := NewTable()
	table.AddRow([]string{"NAME", "VALUE"})
	for _, name := range slices.Sorted(maps.Keys(values)) {
		table.AddRow([]string{name, values[name]})
	}
	table.Print(out)

	return nil
}
