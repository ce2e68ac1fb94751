// Command typedef parses a SQL type expression under one dialect and
// renders it under another: a pure text-in, text-out tool, since
// connecting to or diffing a live database schema is out of scope for
// this module.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/sqltypedef/sqltypedef/dialect"
	"github.com/sqltypedef/sqltypedef/internal/config"
	"github.com/sqltypedef/sqltypedef/metadata"
	"github.com/sqltypedef/sqltypedef/sqltype"
	"github.com/sqltypedef/sqltypedef/util"
)

var version string

type options struct {
	From             string `short:"f" long:"from" description:"Source SQL dialect the input is written in" value-name:"dialect" default:"generic"`
	To               string `short:"t" long:"to" description:"Target SQL dialect to render the parsed type in; defaults to --from" value-name:"dialect"`
	Library          string `long:"library" description:"Library name recorded when --from/--to is 'generic'" value-name:"name"`
	Config           string `short:"c" long:"config" description:"YAML file overriding metadata-bridge key priorities" value-name:"filename"`
	Field            string `long:"field" description:"Build an Arrow field named NAME from the parsed type, annotate it via the metadata bridge, and print the resulting metadata key/value" value-name:"name"`
	ListMetadataKeys bool   `long:"list-metadata-keys" description:"Print the default metadata key candidates for every dialect, one per line, and exit"`
	Debug            bool   `long:"debug" description:"Pretty-print the parsed type's internal structure to stderr"`
	Help             bool   `long:"help" description:"Show this help"`
	Version          bool   `long:"version" description:"Show this version"`
}

// parseOptions parses the CLI flags: a flat go-flags struct,
// --help/--version short-circuits, and log.Fatal on a malformed flag
// set or parse error.
func parseOptions(args []string) (*options, []string) {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[option...] \"<sql type expression>\""
	rest, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	return &opts, rest
}

func resolveDialect(name, library string) (dialect.Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql", "":
		return dialect.Postgres, nil
	case "redshift":
		return dialect.Redshift, nil
	case "redshift-odbc", "redshiftodbc":
		return dialect.RedshiftODBC, nil
	case "snowflake":
		return dialect.Snowflake, nil
	case "bigquery":
		return dialect.BigQuery, nil
	case "databricks":
		return dialect.Databricks, nil
	case "databricks-odbc", "databricksodbc":
		return dialect.DatabricksODBC, nil
	case "salesforce":
		return dialect.Salesforce, nil
	case "generic":
		return dialect.Generic(library, ""), nil
	default:
		return dialect.Dialect{}, fmt.Errorf("unknown dialect %q", name)
	}
}

// printMetadataKeys prints one "dialect: key, key, ..." line per entry
// in keys, sorted by dialect name so the output is stable across runs
// despite Go's randomized map iteration order.
func printMetadataKeys(keys map[string][]string) {
	for name, candidates := range util.CanonicalMapIter(keys) {
		fmt.Printf("%s: %s\n", name, strings.Join(candidates, ", "))
	}
}

func readInput(rest []string) string {
	if len(rest) > 0 {
		return strings.Join(rest, " ")
	}
	scanner := bufio.NewScanner(os.Stdin)
	var b strings.Builder
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

func main() {
	util.InitSlog()

	opts, rest := parseOptions(os.Args[1:])

	if opts.ListMetadataKeys {
		printMetadataKeys(metadata.AllDefaultCandidateKeys())
		return
	}

	from, err := resolveDialect(opts.From, opts.Library)
	if err != nil {
		log.Fatal(err)
	}
	to := from
	if opts.To != "" {
		to, err = resolveDialect(opts.To, opts.Library)
		if err != nil {
			log.Fatal(err)
		}
	}

	var cfg *config.Config
	if opts.Config != "" {
		cfg, err = config.Load(opts.Config)
		if err != nil {
			log.Fatal(err)
		}
	}

	input := readInput(rest)
	if input == "" {
		fmt.Fprintln(os.Stderr, "no SQL type expression given")
		os.Exit(1)
	}

	ty, nullable, err := sqltype.Parse(from, input)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Debug {
		sqltype.SetStrictAssertions(true)
		printer := pp.New()
		printer.SetColoringEnabled(term.IsTerminal(int(os.Stderr.Fd())))
		printer.Fprintln(os.Stderr, ty.Debug())
	}

	if opts.Field != "" {
		writeKey := metadata.DefaultWriteKey(to)
		readKeys := metadata.DefaultCandidateKeys(to)
		if override := cfg.KeysFor(to); len(override) > 0 {
			writeKey = override[0]
			readKeys = override
		}

		field := metadata.ToFieldWithKey(to, opts.Field, ty, nullable, writeKey)
		idx := field.Metadata.FindKey(writeKey)
		fmt.Fprintf(os.Stderr, "field %s metadata[%s] = %s\n", field.Name, writeKey, field.Metadata.Values()[idx])

		roundTripped, roundTrippedNullable, err := metadata.FromFieldWithKeys(to, &field, readKeys)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(os.Stderr, "round-trip: %s (nullable=%t)\n", roundTripped.String(to), roundTrippedNullable)
	}

	rendered := ty.String(to)
	if !nullable {
		rendered += " NOT NULL"
	}
	fmt.Println(rendered)
}
