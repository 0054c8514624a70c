package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/tourpkg"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tourpkg.PackageService = (*PackageService)(nil)

// PackageService implements tourpkg.PackageService using SQLite.
//
// Packages are keyed by product id. A later import replaces a stored
// package only when its content hash differs.
type PackageService struct {
	db *DB
}

// NewPackageService creates a new PackageService.
func NewPackageService(db *DB) *PackageService {
	return &PackageService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content []byte) string {
	var b [8]byte
	h := xxhash.Sum64(content)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// ImportPackages stores packages in one transaction under a new import id.
func (s *PackageService) ImportPackages(ctx context.Context, pkgs []*tourpkg.Package) (*tourpkg.Import, error) {
	for _, pkg := range pkgs {
		if err := pkg.Validate(); err != nil {
			return nil, err
		}
	}

	imp := &tourpkg.Import{
		ID:         uuid.New().String(),
		Count:      len(pkgs),
		ImportedAt: time.Now().UTC().Truncate(time.Second),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO imports (id, count, changed, imported_at)
		VALUES (?, ?, 0, ?)
	`, imp.ID, imp.Count, imp.ImportedAt.Format(time.RFC3339)); err != nil {
		return nil, err
	}

	for _, pkg := range pkgs {
		payload, err := json.Marshal(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode package %s: %w", pkg.ID, err)
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO packages (base_code, variant_code, import_id, nation, title, adult_price, content_hash, payload)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (base_code, variant_code) DO UPDATE SET
				import_id = excluded.import_id,
				nation = excluded.nation,
				title = excluded.title,
				adult_price = excluded.adult_price,
				content_hash = excluded.content_hash,
				payload = excluded.payload
			WHERE packages.content_hash != excluded.content_hash
		`, pkg.ID.BaseCode, pkg.ID.VariantCode, imp.ID, pkg.Nation, pkg.Title, pkg.AdultPrice,
			hashContent(payload), string(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to store package %s: %w", pkg.ID, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}
		imp.Changed += int(n)
	}

	if _, err := tx.ExecContext(ctx, "UPDATE imports SET changed = ? WHERE id = ?", imp.Changed, imp.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return imp, nil
}

// FindImportByID retrieves an import run by ID.
func (s *PackageService) FindImportByID(ctx context.Context, id string) (*tourpkg.Import, error) {
	var imp tourpkg.Import
	var importedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, count, changed, imported_at
		FROM imports
		WHERE id = ?
	`, id).Scan(&imp.ID, &imp.Count, &imp.Changed, &importedAt)

	if err == sql.ErrNoRows {
		return nil, tourpkg.Errorf(tourpkg.ENOTFOUND, "import not found")
	}
	if err != nil {
		return nil, err
	}

	if imp.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
		return nil, err
	}
	return &imp, nil
}

// FindPackages retrieves packages matching the filter, ordered by product id.
func (s *PackageService) FindPackages(ctx context.Context, filter tourpkg.PackageFilter) ([]*tourpkg.Package, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT payload FROM packages WHERE 1=1")

	if filter.VariantCode != nil {
		query.WriteString(" AND variant_code = ?")
		args = append(args, *filter.VariantCode)
	}
	if filter.Nation != nil {
		query.WriteString(" AND nation = ?")
		args = append(args, *filter.Nation)
	}

	query.WriteString(" ORDER BY base_code ASC, variant_code ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pkgs []*tourpkg.Package
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var pkg tourpkg.Package
		if err := json.Unmarshal([]byte(payload), &pkg); err != nil {
			return nil, fmt.Errorf("failed to decode package payload: %w", err)
		}
		pkgs = append(pkgs, &pkg)
	}

	return pkgs, rows.Err()
}
