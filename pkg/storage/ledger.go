// Package storage archives converted ledgers on the local filesystem.
// Each saved run gets a UUID, the ledger itself as JSON, and a small
// metadata record so past conversions can be listed and reloaded without
// re-parsing the source document.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
)

// LedgerInfo describes one archived conversion.
type LedgerInfo struct {
	ID           uuid.UUID  `json:"id"`
	Bank         model.Bank `json:"bank"`
	SourceFile   string     `json:"source_file"`
	Transactions int        `json:"transactions"`
	CreatedAt    time.Time  `json:"created_at"`
}

// LedgerStore archives ledgers under a base directory:
//
//	<base>/<id>.json       the transactions
//	<base>/.meta/<id>.json the LedgerInfo record
type LedgerStore struct {
	basePath string
}

// NewLedgerStore opens (creating if needed) an archive directory.
func NewLedgerStore(basePath string) (*LedgerStore, error) {
	if err := os.MkdirAll(filepath.Join(basePath, ".meta"), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger archive: %w", err)
	}
	return &LedgerStore{basePath: basePath}, nil
}

// Save archives one converted ledger and returns its record.
func (s *LedgerStore) Save(ctx context.Context, bank model.Bank, sourceFile string, transactions []model.Transaction) (*LedgerInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info := &LedgerInfo{
		ID:           uuid.New(),
		Bank:         bank,
		SourceFile:   filepath.Base(sourceFile),
		Transactions: len(transactions),
		CreatedAt:    time.Now().UTC(),
	}

	ledgerPath := s.ledgerPath(info.ID)
	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	if err := os.WriteFile(ledgerPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing ledger: %w", err)
	}

	meta, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding ledger metadata: %w", err)
	}
	if err := os.WriteFile(s.metaPath(info.ID), meta, 0o644); err != nil {
		os.Remove(ledgerPath)
		return nil, fmt.Errorf("writing ledger metadata: %w", err)
	}

	return info, nil
}

// Load reads one archived ledger back.
func (s *LedgerStore) Load(ctx context.Context, id uuid.UUID) ([]model.Transaction, *LedgerInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	info, err := s.info(id)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(s.ledgerPath(id))
	if err != nil {
		return nil, nil, fmt.Errorf("reading ledger %s: %w", id, err)
	}
	var transactions []model.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, nil, fmt.Errorf("decoding ledger %s: %w", id, err)
	}
	return transactions, info, nil
}

// List returns every archived conversion, most recent first.
func (s *LedgerStore) List(ctx context.Context) ([]*LedgerInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(s.basePath, ".meta"))
	if err != nil {
		return nil, fmt.Errorf("listing ledger archive: %w", err)
	}

	infos := make([]*LedgerInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id, err := uuid.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue
		}
		info, err := s.info(id)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})
	return infos, nil
}

func (s *LedgerStore) info(id uuid.UUID) (*LedgerInfo, error) {
	data, err := os.ReadFile(s.metaPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("ledger not found: %s", id)
		}
		return nil, fmt.Errorf("reading ledger metadata: %w", err)
	}
	var info LedgerInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decoding ledger metadata: %w", err)
	}
	return &info, nil
}

func (s *LedgerStore) ledgerPath(id uuid.UUID) string {
	return filepath.Join(s.basePath, id.String()+".json")
}

func (s *LedgerStore) metaPath(id uuid.UUID) string {
	return filepath.Join(s.basePath, ".meta", id.String()+".json")
}
