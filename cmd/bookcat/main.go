package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/bookcat/internal/catalog"
	"git.home.luguber.info/inful/bookcat/internal/cataloguing"
	"git.home.luguber.info/inful/bookcat/internal/config"
	"git.home.luguber.info/inful/bookcat/internal/lexicon"
	"git.home.luguber.info/inful/bookcat/internal/observability"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Title struct {
		Text []string `arg:"" help:"Title text to capitalize"`
	} `cmd:"" help:"Capitalize a book title"`

	Author struct {
		Text []string `arg:"" help:"Author name to capitalize"`
	} `cmd:"" help:"Capitalize an author name"`

	Sortable struct {
		Kind string   `arg:"" enum:"title,author" help:"Kind of sort key (title or author)"`
		Text []string `arg:"" help:"Text to derive the key from"`
	} `cmd:"" help:"Derive a catalogue sort key"`

	Sort struct {
		Kind    string `arg:"" enum:"title,author" help:"Sort as titles or as author names"`
		Reverse bool   `short:"r" help:"Sort in descending order"`
	} `cmd:"" help:"Sort lines read from stdin in catalogue order"`

	Catalog struct {
		Add struct {
			Title  string `arg:"" help:"Book title"`
			Author string `arg:"" help:"Author name"`
		} `cmd:"" help:"Add a book to the catalogue"`

		List struct {
			Sort string `default:"title" enum:"title,author,added" help:"Listing order"`
		} `cmd:"" help:"List catalogued books"`

		Rm struct {
			ID int64 `arg:"" help:"Book ID to remove"`
		} `cmd:"" help:"Remove a book from the catalogue"`
	} `cmd:"" help:"Manage the persistent catalogue"`

	Serve struct{} `cmd:"" help:"Start the HTTP API server"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bookcat: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if CLI.Verbose {
		level = "debug"
	}
	observability.Setup(level, cfg.Logging.Format)

	if err := run(ctx.Command(), cfg); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func run(command string, cfg *config.Config) error {
	c, err := newCataloguer(cfg)
	if err != nil {
		return err
	}

	switch command {
	case "title <text>":
		fmt.Println(c.CapitalizeTitle(strings.Join(CLI.Title.Text, " ")))
	case "author <text>":
		fmt.Println(c.CapitalizeAuthor(strings.Join(CLI.Author.Text, " ")))
	case "sortable <kind> <text>":
		text := strings.Join(CLI.Sortable.Text, " ")
		if CLI.Sortable.Kind == "title" {
			fmt.Println(c.SortableTitle(text))
		} else {
			fmt.Println(c.SortableAuthor(text))
		}
	case "sort <kind>":
		return runSort(c, os.Stdin, os.Stdout)
	case "catalog add <title> <author>":
		return runCatalogAdd(cfg, c)
	case "catalog list":
		return runCatalogList(cfg)
	case "catalog rm <id>":
		return runCatalogRm(cfg)
	case "serve":
		return runServe(cfg, c)
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			return err
		}
		fmt.Printf("Created configuration file: %s\n", CLI.Config)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}

// newCataloguer builds the Cataloguer from the configured word lists.
func newCataloguer(cfg *config.Config) (*cataloguing.Cataloguer, error) {
	lex, err := lexicon.Load(lexiconFiles(cfg))
	if err != nil {
		return nil, err
	}
	return cataloguing.NewWithOptions(lex, cataloguing.Options{
		DisableMcPrefix: cfg.Lexicon.DisableMcPrefix,
	}), nil
}

func lexiconFiles(cfg *config.Config) lexicon.Files {
	return lexicon.Files{
		LowercaseTitleWords:  cfg.Lexicon.LowercaseTitleWords,
		LowercaseAuthorWords: cfg.Lexicon.LowercaseAuthorWords,
		MacSurnames:          cfg.Lexicon.MacSurnames,
		AuthorTitles:         cfg.Lexicon.AuthorTitles,
	}
}

// runSort reads one entry per line and prints them in catalogue order.
func runSort(c *cataloguing.Cataloguer, in io.Reader, out io.Writer) error {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if CLI.Sort.Kind == "title" {
		cataloguing.SortByTitle(c, lines, func(s string) string { return s }, CLI.Sort.Reverse)
	} else {
		cataloguing.SortByAuthor(c, lines, func(s string) string { return s }, CLI.Sort.Reverse)
	}

	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func openStore(cfg *config.Config) (*catalog.SQLiteStore, error) {
	return catalog.NewSQLiteStore(cfg.Catalog.Database)
}

func runCatalogAdd(cfg *config.Config, c *cataloguing.Cataloguer) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	book := catalog.Book{
		Title:          c.CapitalizeTitle(CLI.Catalog.Add.Title),
		Author:         c.CapitalizeAuthor(CLI.Catalog.Add.Author),
		SortableTitle:  c.TitleSortKey(CLI.Catalog.Add.Title),
		SortableAuthor: c.AuthorSortKey(CLI.Catalog.Add.Author),
	}
	id, err := store.Add(context.Background(), book)
	if err != nil {
		return err
	}
	fmt.Printf("Added #%d: %s by %s\n", id, book.Title, book.Author)
	return nil
}

func runCatalogList(cfg *config.Config) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	books, err := store.List(context.Background(), catalog.SortOrder(CLI.Catalog.List.Sort))
	if err != nil {
		return err
	}
	for _, b := range books {
		fmt.Printf("%4d  %-40s  %s\n", b.ID, b.Title, b.Author)
	}
	return nil
}

func runCatalogRm(cfg *config.Config) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(context.Background(), CLI.Catalog.Rm.ID); err != nil {
		return err
	}
	fmt.Printf("Removed #%d\n", CLI.Catalog.Rm.ID)
	return nil
}
