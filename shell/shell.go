// Package shell implements the interactive command language of the
// markup explorer: a line tokenizer and a stateful interpreter that
// mutates a session as commands execute.
package shell

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/joshuabenuck/markup"
)

// Shell interprets one line of input at a time against a session.
// All collaborator calls are synchronous; the caller reads the next
// line only after Execute returns.
type Shell struct {
	session   *Session
	fetcher   markup.Fetcher
	parser    markup.Parser
	converter markup.Converter
	extractor markup.Extractor
	pages     markup.PageService
	out       io.Writer
}

// Option configures a Shell.
type Option func(*Shell)

// WithConverter enables the markdown command.
func WithConverter(c markup.Converter) Option {
	return func(s *Shell) {
		s.converter = c
	}
}

// WithExtractor enables the text command (together with a converter).
func WithExtractor(e markup.Extractor) Option {
	return func(s *Shell) {
		s.extractor = e
	}
}

// WithPages enables the save, pages, load, and rm commands.
func WithPages(p markup.PageService) Option {
	return func(s *Shell) {
		s.pages = p
	}
}

// New creates a Shell writing command output to out.
func New(fetcher markup.Fetcher, parser markup.Parser, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		session: NewSession(),
		fetcher: fetcher,
		parser:  parser,
		out:     out,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session exposes the shell's state for inspection.
func (s *Shell) Session() *Session {
	return s.session
}

// Execute tokenizes one line and runs the command it names. An empty
// line and an unknown command are both silent no-ops; every failure is
// returned as an error and leaves the session in a consistent state.
func (s *Shell) Execute(ctx context.Context, line string) error {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}

	cmd, args := tokens[0], tokens[1:]
	switch cmd {
	case "cols":
		return s.cols(args)
	case "url":
		return s.url(ctx, args)
	case "head":
		return s.head(args)
	case "find":
		return s.find(args)
	case "markdown":
		return s.markdown()
	case "text":
		return s.text()
	case "save":
		return s.save(ctx)
	case "pages":
		return s.listPages(ctx)
	case "load":
		return s.load(ctx, args)
	case "rm":
		return s.remove(ctx, args)
	}

	// Unknown commands are ignored.
	return nil
}

func (s *Shell) cols(args []string) error {
	if len(args) == 0 {
		return markup.Errorf(markup.EINVALID, "cols requires a count or max")
	}
	if args[0] == "max" {
		s.session.Cols = nil
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return markup.Errorf(markup.EINVALID, "invalid column count %q", args[0])
	}
	s.session.Cols = &n
	return nil
}

func (s *Shell) url(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return markup.Errorf(markup.EINVALID, "url requires an address")
	}
	addr := args[0]

	// The URL is recorded even when the fetch fails; the loaded
	// contents are replaced only on success.
	s.session.URL = addr

	res, err := s.fetcher.Fetch(ctx, addr)
	if err != nil {
		return markup.Errorf(markup.EUNAVAILABLE, "fetch %s: %v", addr, err)
	}
	if res.StatusCode >= 500 && res.StatusCode <= 599 {
		return markup.Errorf(markup.ESERVER, "server error: %d %s", res.StatusCode, http.StatusText(res.StatusCode))
	}

	s.session.SetContents(addr, res.Body)
	return nil
}

func (s *Shell) head(args []string) error {
	if len(args) == 0 {
		return markup.Errorf(markup.EINVALID, "head requires a line count")
	}
	max, err := strconv.Atoi(args[0])
	if err != nil || max < 0 {
		return markup.Errorf(markup.EINVALID, "invalid line count %q", args[0])
	}
	if !s.session.Loaded {
		return markup.Errorf(markup.EPRECONDITION, "no contents available")
	}

	for i, line := range strings.Split(s.session.Contents, "\n") {
		if i >= max {
			break
		}
		fmt.Fprintln(s.out, s.truncate(line))
	}
	return nil
}

// find walks its sub-operations left to right against a working node
// that starts unset. The node is derived fresh from the current
// document on every invocation; it never persists across lines.
func (s *Shell) find(args []string) error {
	doc, err := s.session.Document(s.parser)
	if err != nil {
		return err
	}

	var node markup.Node
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "tag":
			if i+1 >= len(args) {
				return markup.Errorf(markup.EINVALID, "no tag specified")
			}
			i++
			tag := args[i]
			var n markup.Node
			var ok bool
			if tag == "true" {
				n, ok = doc.FirstAny()
			} else {
				n, ok = doc.First(tag)
			}
			if !ok {
				return markup.Errorf(markup.ENOTFOUND, "unable to find tag %s", tag)
			}
			node = n
		case "name":
			if node == nil {
				return markup.Errorf(markup.EPRECONDITION, "name requires a matched tag")
			}
			fmt.Fprintln(s.out, node.Name())
		case "attrs":
			if node == nil {
				return markup.Errorf(markup.EPRECONDITION, "attrs requires a matched tag")
			}
			for _, a := range node.Attrs() {
				fmt.Fprintln(s.out, a.Name)
			}
		case "values":
			if node == nil {
				return markup.Errorf(markup.EPRECONDITION, "values requires a matched tag")
			}
			for _, a := range node.Attrs() {
				fmt.Fprintf(s.out, "%s = %s\n", a.Name, a.Value)
			}
		case "tree":
			children := doc.Children()
			if node != nil {
				children = node.Children()
			}
			for _, c := range children {
				fmt.Fprintln(s.out, c.Name())
			}
		default:
			return markup.Errorf(markup.EUNRECOGNIZED, "unrecognized param: %s", args[i])
		}
	}
	return nil
}

func (s *Shell) markdown() error {
	if s.converter == nil {
		return markup.Errorf(markup.EPRECONDITION, "markdown conversion not configured")
	}
	if !s.session.Loaded {
		return markup.Errorf(markup.EPRECONDITION, "no contents available")
	}

	md, err := s.converter.Convert(s.session.Contents)
	if err != nil {
		return err
	}
	s.printLines(md)
	return nil
}

func (s *Shell) text() error {
	if s.extractor == nil || s.converter == nil {
		return markup.Errorf(markup.EPRECONDITION, "content extraction not configured")
	}
	if !s.session.Loaded {
		return markup.Errorf(markup.EPRECONDITION, "no contents available")
	}

	res, err := s.extractor.Extract(s.session.Contents)
	if err != nil {
		return err
	}
	if strings.TrimSpace(res.ContentHTML) == "" {
		return markup.Errorf(markup.ENOTFOUND, "no main content found")
	}

	md, err := s.converter.Convert(res.ContentHTML)
	if err != nil {
		return err
	}
	if res.Title != "" {
		fmt.Fprintln(s.out, s.truncate(res.Title))
		fmt.Fprintln(s.out)
	}
	s.printLines(md)
	return nil
}

func (s *Shell) save(ctx context.Context) error {
	if s.pages == nil {
		return markup.Errorf(markup.EPRECONDITION, "page store not configured")
	}
	if !s.session.Loaded || s.session.URL == "" {
		return markup.Errorf(markup.EPRECONDITION, "no fetched page to save")
	}

	page := &markup.Page{URL: s.session.URL, Content: s.session.Contents}
	if err := s.pages.SavePage(ctx, page); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %s\n", page.URL)
	return nil
}

func (s *Shell) listPages(ctx context.Context) error {
	if s.pages == nil {
		return markup.Errorf(markup.EPRECONDITION, "page store not configured")
	}

	pages, err := s.pages.FindPages(ctx, markup.PageFilter{})
	if err != nil {
		return err
	}
	for _, p := range pages {
		fmt.Fprintf(s.out, "%s  %s\n", p.FetchedAt.Format(time.RFC3339), p.URL)
	}
	return nil
}

func (s *Shell) load(ctx context.Context, args []string) error {
	if s.pages == nil {
		return markup.Errorf(markup.EPRECONDITION, "page store not configured")
	}
	if len(args) == 0 {
		return markup.Errorf(markup.EINVALID, "load requires a URL")
	}

	page, err := s.pages.FindPageByURL(ctx, args[0])
	if err != nil {
		return err
	}
	s.session.SetContents(page.URL, page.Content)
	return nil
}

func (s *Shell) remove(ctx context.Context, args []string) error {
	if s.pages == nil {
		return markup.Errorf(markup.EPRECONDITION, "page store not configured")
	}
	if len(args) == 0 {
		return markup.Errorf(markup.EINVALID, "rm requires a URL")
	}

	if err := s.pages.DeletePageByURL(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "removed %s\n", args[0])
	return nil
}

// printLines writes text one line at a time with width truncation.
func (s *Shell) printLines(text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(s.out, s.truncate(line))
	}
}

// truncate shortens a line to the session width, counting runes the
// way a terminal column count does, with a three-character ellipsis.
func (s *Shell) truncate(line string) string {
	if s.session.Cols == nil {
		return line
	}
	width := *s.session.Cols
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	keep := width - 3
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + "..."
}
