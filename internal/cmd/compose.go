package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/basecamp/cookie-composer/pkg/cookie"
)

var (
	ErrNoInstruction       = errors.New("one of --set or --destroy is required")
	ErrConflictingCommands = errors.New("--set and --destroy can not be combined")
	ErrInvalidAssignment   = errors.New("--set must be in the form name=value")
)

type composeArgs struct {
	existing []string
	set      string
	destroy  string

	domain   string
	path     string
	secure   bool
	httpOnly bool
	sameSite string
	maxAge   int
	raw      bool

	table bool
}

type composeCommand struct {
	cmd  *cobra.Command
	args composeArgs
}

func newComposeCommand() *composeCommand {
	composeCommand := &composeCommand{}
	composeCommand.cmd = &cobra.Command{
		Use:     "compose",
		Short:   "Merge a cookie write into existing Set-Cookie values and print the result",
		PreRunE: composeCommand.preRun,
		RunE:    composeCommand.run,
		Args:    cobra.NoArgs,
	}

	flags := composeCommand.cmd.Flags()
	flags.StringArrayVar(&composeCommand.args.existing, "existing", []string{}, "Set-Cookie value already on the response (may be repeated)")
	flags.StringVar(&composeCommand.args.set, "set", "", "Cookie to write, as name=value")
	flags.StringVar(&composeCommand.args.destroy, "destroy", "", "Name of the cookie to destroy")
	flags.StringVar(&composeCommand.args.domain, "domain", "", "Domain attribute")
	flags.StringVar(&composeCommand.args.path, "path", "", "Path attribute")
	flags.BoolVar(&composeCommand.args.secure, "secure", false, "Set the Secure attribute")
	flags.BoolVar(&composeCommand.args.httpOnly, "http-only", false, "Set the HttpOnly attribute")
	flags.StringVar(&composeCommand.args.sameSite, "same-site", "", "SameSite attribute (strict, lax or none)")
	flags.IntVar(&composeCommand.args.maxAge, "max-age", 0, "Max-Age attribute in seconds")
	flags.BoolVar(&composeCommand.args.raw, "raw", false, "Write the value without percent-encoding it")
	flags.BoolVar(&composeCommand.args.table, "table", false, "Print the resulting cookies as a table")

	return composeCommand
}

func (c *composeCommand) preRun(cmd *cobra.Command, args []string) error {
	switch {
	case c.args.set == "" && c.args.destroy == "":
		return ErrNoInstruction
	case c.args.set != "" && c.args.destroy != "":
		return ErrConflictingCommands
	case c.args.set != "" && !strings.Contains(c.args.set, "="):
		return ErrInvalidAssignment
	}

	if c.args.sameSite != "" {
		_, err := cookie.ParseSameSite(c.args.sameSite)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *composeCommand) run(cmd *cobra.Command, args []string) error {
	header := http.Header{}
	if len(c.args.existing) > 0 {
		header["Set-Cookie"] = c.args.existing
	}

	ctx := cookie.Context{Response: cookie.HTTPHeader(header)}
	opts := c.options(cmd)

	var err error
	if c.args.destroy != "" {
		err = cookie.Destroy(ctx, c.args.destroy, opts...)
	} else {
		name, value, _ := strings.Cut(c.args.set, "=")
		err = cookie.Set(ctx, name, value, opts...)
	}
	if err != nil {
		return err
	}

	return c.print(cmd.OutOrStdout(), header["Set-Cookie"])
}

// Private

func (c *composeCommand) options(cmd *cobra.Command) []cookie.Option {
	opts := []cookie.Option{
		cookie.WithDomain(c.args.domain),
		cookie.WithPath(c.args.path),
		cookie.WithSecure(c.args.secure),
		cookie.WithHTTPOnly(c.args.httpOnly),
	}

	if c.args.sameSite != "" {
		sameSite, _ := cookie.ParseSameSite(c.args.sameSite)
		opts = append(opts, cookie.WithSameSite(sameSite))
	}
	if cmd.Flags().Changed("max-age") {
		opts = append(opts, cookie.WithMaxAge(c.args.maxAge))
	}
	if c.args.raw {
		opts = append(opts, cookie.WithoutEncoding())
	}

	return opts
}

func (c *composeCommand) print(w io.Writer, values []string) error {
	if !c.args.table {
		for _, v := range values {
			fmt.Fprintf(w, "Set-Cookie: %s\n", v)
		}
		return nil
	}

	cookies, err := cookie.ParseSetCookie(values)
	if err != nil {
		return err
	}

	table := NewTable()
	table.AddRow([]string{"NAME", "VALUE", "DOMAIN", "PATH", "MAX-AGE", "FLAGS"})
	for _, ck := range cookies {
		table.AddRow([]string{ck.Name(), ck.Value(), ck.Domain(), ck.Path(), formatMaxAge(ck), formatFlags(ck)})
	}
	table.Print(w)

	return nil
}

func formatMaxAge(c cookie.Cookie) string {
	maxAge, ok := c.MaxAge()
	if !ok {
		return "-"
	}
	return strconv.Itoa(maxAge)
}

func formatFlags(c cookie.Cookie) string {
	flags := []string{}
	if c.HTTPOnly() {
		flags = append(flags, "HttpOnly")
	}
	if c.Secure() {
		flags = append(flags, "Secure")
	}
	if c.SameSiteDeclared() {
		flags = append(flags, "SameSite="+c.SameSite().String())
	}
	return strings.Join(flags, ",")
}
