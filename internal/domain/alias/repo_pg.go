package alias

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajbrades/adonishealth/internal/platform/apperr"
	"github.com/rajbrades/adonishealth/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates a PostgreSQL-backed alias repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const aliasColumns = `id, biomarker_id, biomarker_code, lab_provider, alias_name, alias_code,
       lab_unit, conversion_factor, lab_ref_low, lab_ref_high, created_at, updated_at`

func scanAlias(row pgx.Row) (*Alias, error) {
	var a Alias
	err := row.Scan(&a.ID, &a.BiomarkerID, &a.BiomarkerCode, &a.LabProvider, &a.AliasName, &a.AliasCode,
		&a.LabUnit, &a.ConversionFactor, &a.LabRefLow, &a.LabRefHigh, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) GetByName(ctx context.Context, provider, name string) (*Alias, error) {
	a, err := scanAlias(r.conn(ctx).QueryRow(ctx,
		`SELECT `+aliasColumns+` FROM biomarker_alias
		 WHERE lab_provider = $1 AND alias_name = $2`, provider, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("alias", provider+"/"+name)
		}
		return nil, fmt.Errorf("alias get by name: %w", err)
	}
	return a, nil
}

func (r *repoPG) GetByNameFold(ctx context.Context, provider, name string) (*Alias, error) {
	a, err := scanAlias(r.conn(ctx).QueryRow(ctx,
		`SELECT `+aliasColumns+` FROM biomarker_alias
		 WHERE lab_provider = $1 AND LOWER(alias_name) = LOWER($2)
		 ORDER BY alias_name LIMIT 1`, provider, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("alias", provider+"/"+name)
		}
		return nil, fmt.Errorf("alias get by folded name: %w", err)
	}
	return a, nil
}

func (r *repoPG) GetByCode(ctx context.Context, provider, code string) (*Alias, error) {
	a, err := scanAlias(r.conn(ctx).QueryRow(ctx,
		`SELECT `+aliasColumns+` FROM biomarker_alias
		 WHERE lab_provider = $1 AND alias_code = $2
		 ORDER BY alias_name LIMIT 1`, provider, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("alias", provider+"/#"+code)
		}
		return nil, fmt.Errorf("alias get by code: %w", err)
	}
	return a, nil
}

func (r *repoPG) ListByProvider(ctx context.Context, provider string) ([]*Alias, error) {
	return r.list(ctx,
		`SELECT `+aliasColumns+` FROM biomarker_alias WHERE lab_provider = $1 ORDER BY alias_name`,
		provider)
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Alias, error) {
	return r.list(ctx,
		`SELECT `+aliasColumns+` FROM biomarker_alias ORDER BY lab_provider, alias_name`)
}

func (r *repoPG) list(ctx context.Context, q string, args ...interface{}) ([]*Alias, error) {
	rows, err := r.conn(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("alias list: %w", err)
	}
	defer rows.Close()

	var aliases []*Alias
	for rows.Next() {
		a, err := scanAlias(rows)
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, a)
	}
	return aliases, rows.Err()
}

func (r *repoPG) CountByProvider(ctx context.Context) ([]ProviderCount, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT lab_provider, COUNT(*) FROM biomarker_alias GROUP BY lab_provider ORDER BY lab_provider`)
	if err != nil {
		return nil, fmt.Errorf("alias provider counts: %w", err)
	}
	defer rows.Close()

	var counts []ProviderCount
	for rows.Next() {
		var pc ProviderCount
		if err := rows.Scan(&pc.LabProvider, &pc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}

// Upsert relies on the unique (lab_provider, alias_name) constraint to close
// the check-then-insert race: the DO UPDATE arm only fires when the existing
// row maps to the same biomarker, so a concurrent insert for a different
// biomarker yields zero rows, which we surface as a conflict.
func (r *repoPG) Upsert(ctx context.Context, a *Alias) (bool, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	var inserted bool
	err := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO biomarker_alias (id, biomarker_id, biomarker_code, lab_provider, alias_name,
		        alias_code, lab_unit, conversion_factor, lab_ref_low, lab_ref_high)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (lab_provider, alias_name) DO UPDATE SET
		        alias_code = excluded.alias_code,
		        lab_unit = excluded.lab_unit,
		        conversion_factor = excluded.conversion_factor,
		        lab_ref_low = excluded.lab_ref_low,
		        lab_ref_high = excluded.lab_ref_high,
		        updated_at = NOW()
		 WHERE biomarker_alias.biomarker_id = excluded.biomarker_id
		 RETURNING id, (xmax = 0)`,
		a.ID, a.BiomarkerID, a.BiomarkerCode, a.LabProvider, a.AliasName,
		a.AliasCode, a.LabUnit, a.ConversionFactor, a.LabRefLow, a.LabRefHigh).
		Scan(&a.ID, &inserted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperr.Conflict("alias",
				"%s %q is already mapped to a different biomarker", a.LabProvider, a.AliasName)
		}
		return false, fmt.Errorf("alias upsert: %w", err)
	}
	return inserted, nil
}
