// Command convert turns one bank statement file into a canonical JSON
// ledger on stdout.
//
//	convert -file statement.pdf -bank gtbank [-password secret]
//	convert -file export.csv -bank kuda
//
// For PDF statements the -bank flag may be omitted; the institution is
// then detected from the document text.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/apexledger/statement-engine/internal/domain/statement/extractor"
	"github.com/apexledger/statement-engine/internal/domain/statement/model"
	"github.com/apexledger/statement-engine/internal/domain/statement/pipeline"
	"github.com/apexledger/statement-engine/internal/domain/statement/segmenter"
	"github.com/apexledger/statement-engine/pkg/config"
	"github.com/apexledger/statement-engine/pkg/storage"
)

func main() {
	if err := run(); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		file     = flag.String("file", "", "statement file to convert (pdf, xlsx, xls or csv)")
		bankFlag = flag.String("bank", "", "institution: gtbank, access, firstbank, kuda, opay or zenith (detected for PDFs when omitted)")
		password = flag.String("password", "", "password for protected PDF statements")
		sheet    = flag.String("sheet", "", "worksheet name for multi-sheet workbooks")
		outDir   = flag.String("out", "", "archive the ledger under this directory instead of printing it")
		verbose  = flag.Bool("v", false, "log progress to stderr")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		return errors.New("-file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg.Log)
	slog.SetDefault(log)

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *file, err)
	}

	pass := *password
	if pass == "" {
		pass = cfg.Pipeline.PDFPassword
	}

	bank, err := resolveBank(*bankFlag, *file, data, pass)
	if err != nil {
		return err
	}

	sheetName := *sheet
	if sheetName == "" {
		sheetName = cfg.Pipeline.SheetName
	}
	opts := pipeline.Options{
		Password:  pass,
		SheetName: sheetName,
		ChunkSize: cfg.Pipeline.ChunkSize,
		Logger:    log,
	}
	if *verbose {
		opts.Progress = func(percent int, message string) {
			log.Info("progress", "percent", percent, "status", message)
		}
	}

	doc := pipeline.Document{Data: data, Filename: filepath.Base(*file)}
	transactions, err := pipeline.Run(context.Background(), doc, bank, opts)
	if err != nil {
		return err
	}

	if *outDir != "" {
		store, err := storage.NewLedgerStore(*outDir)
		if err != nil {
			return err
		}
		info, err := store.Save(context.Background(), bank, *file, transactions)
		if err != nil {
			return err
		}
		fmt.Println(info.ID)
	} else {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(transactions); err != nil {
			return fmt.Errorf("writing ledger: %w", err)
		}
	}

	log.Info("converted statement",
		"file", filepath.Base(*file),
		"bank", bank,
		"transactions", len(transactions))
	return nil
}

// resolveBank honors an explicit -bank flag and otherwise tries to detect
// the institution from PDF text.
func resolveBank(flagValue, filename string, data []byte, password string) (model.Bank, error) {
	if flagValue != "" {
		return model.ParseBank(flagValue)
	}
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		text, err := extractor.PageText(data, password)
		if err != nil {
			return "", err
		}
		if bank, ok := segmenter.DetectBank(text); ok {
			return bank, nil
		}
	}
	return "", errors.New("could not determine institution, pass -bank")
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
