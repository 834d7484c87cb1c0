package browser

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dop251/goja"
)

// Document is a scripted browser page. Scripts run in a JavaScript runtime
// and see a document object whose cookie property is backed by a Jar, so
// code written against document.cookie behaves as it would in a browser.
//
// Document implements cookie.Document.
type Document struct {
	vm  *goja.Runtime
	jar *Jar
	out io.Writer
	mu  sync.Mutex
}

type DocumentOptions struct {
	Now    func() time.Time
	Output io.Writer
}

func NewDocument(options DocumentOptions) (*Document, error) {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Output == nil {
		options.Output = os.Stdout
	}

	d := &Document{
		vm:  goja.New(),
		jar: NewJar(options.Now),
		out: options.Output,
	}

	err := d.install()
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Run evaluates a script against the page.
func (d *Document) Run(script string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := d.vm.RunString(script)
	if err != nil {
		return fmt.Errorf("script failed: %w", err)
	}
	return nil
}

// Cookie reads document.cookie.
func (d *Document) Cookie() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.document().Get("cookie").String()
}

// SetCookie assigns document.cookie.
func (d *Document) SetCookie(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.document().Set("cookie", s)
}

func (d *Document) Jar() *Jar {
	return d.jar
}

// Private

func (d *Document) install() error {
	doc := d.vm.NewObject()
	err := doc.DefineAccessorProperty("cookie",
		d.vm.ToValue(d.getCookie),
		d.vm.ToValue(d.setCookie),
		goja.FLAG_FALSE, goja.FLAG_TRUE)
	if err != nil {
		return err
	}

	console := d.vm.NewObject()
	err = console.Set("log", d.log)
	if err != nil {
		return err
	}

	err = d.vm.Set("document", doc)
	if err != nil {
		return err
	}
	return d.vm.Set("console", console)
}

func (d *Document) document() *goja.Object {
	return d.vm.Get("document").ToObject(d.vm)
}

func (d *Document) getCookie(call goja.FunctionCall) goja.Value {
	return d.vm.ToValue(d.jar.String())
}

func (d *Document) setCookie(call goja.FunctionCall) goja.Value {
	d.jar.Store(call.Argument(0).String())
	return goja.Undefined()
}

func (d *Document) log(call goja.FunctionCall) goja.Value {
	parts := make([]string, len(call.Arguments))
	for i, arg := range call.Arguments {
		parts[i] = arg.String()
	}
	fmt.Fprintln(d.out, strings.Join(parts, " "))
	return goja.Undefined()
}
