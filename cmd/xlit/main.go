package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/srobertson/xlit/internal/logger"
	"github.com/srobertson/xlit/internal/memory"
	"github.com/srobertson/xlit/internal/memory/sqlite"
	"github.com/srobertson/xlit/internal/registry"
	"github.com/srobertson/xlit/internal/tmx"
	"github.com/srobertson/xlit/internal/xlit"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("xlit")

	var (
		listLanguages = fs.BoolLong("list-languages", "list the available source languages and exit")
		listMethods   = fs.BoolLong("list-methods", "list the available methods and exit")
		language      = fs.StringLong("language", "", "restrict --list-methods to one language")
		method        = fs.StringLong("method", "", "canonical name of the transliteration method")
		matchCase     = fs.BoolLong("match-case", "match the capitalization convention of the input")
		inPath        = fs.StringLong("in", "", "input file (default stdin)")
		outPath       = fs.StringLong("out", "", "output file (default stdout)")
		tmxPath       = fs.StringLong("tmx", "", "also write a TMX export of this run to the given path")
		dbPath        = fs.StringLong("db-path", "", "SQLite translation memory path (no memory kept if empty)")
		logLevel      = fs.StringEnumLong("log-level", "log level", "warn", "debug", "info", "error")
		logFormat     = fs.StringEnumLong("log-format", "log output format", "pretty", "json")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New(*logLevel, *logFormat)
	slog.SetDefault(log)

	reg, err := registry.Get()
	if err != nil {
		return fmt.Errorf("initializing method registry: %w", err)
	}

	if *listLanguages {
		for _, lang := range reg.Languages() {
			fmt.Println(lang)
		}
		return nil
	}

	if *listMethods {
		names := reg.MethodNames()
		if *language != "" {
			names = reg.MethodsByLanguage(*language)
			if names == nil {
				return fmt.Errorf("unknown language %q", *language)
			}
		}
		for _, name := range names {
			caseNote := ""
			if reg.SupportsCaseMatch(name) {
				caseNote = " [case-match]"
			}
			fmt.Printf("%-20s %s%s\n", reg.DisplayName(name), name, caseNote)
		}
		return nil
	}

	if *method == "" {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return errors.New("--method is required")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var repo memory.Repository
	if *dbPath != "" {
		repo, err = sqlite.New(ctx, *dbPath)
		if err != nil {
			return fmt.Errorf("opening translation memory: %w", err)
		}
		defer repo.Close()
	}

	text, err := readInput(*inPath)
	if err != nil {
		return err
	}

	svc := xlit.New(reg, repo, log)
	res, err := svc.Transliterate(ctx, xlit.Request{
		Method:    *method,
		Text:      text,
		MatchCase: *matchCase,
	})
	if err != nil {
		return fmt.Errorf("transliterating: %w", err)
	}
	for _, w := range res.Warnings {
		log.Warn(w)
	}

	if err := writeOutput(*outPath, res.Text); err != nil {
		return err
	}

	if *tmxPath != "" {
		if err := writeTMX(*tmxPath, *method, reg.LanguageCode(*method), text, res.Text); err != nil {
			return fmt.Errorf("writing TMX: %w", err)
		}
		log.Info("wrote TMX export", "path", *tmxPath)
	}

	return nil
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func writeOutput(path, text string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeTMX(path, method, srclang, source, target string) error {
	pairs := tmx.FromLines(source, target)
	doc := tmx.New(method, srclang, pairs, time.Now())

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
