package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajbrades/adonishealth/internal/platform/apperr"
	"github.com/rajbrades/adonishealth/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates a PostgreSQL-backed catalog repository.
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

const biomarkerColumns = `id, code, name, category, subcategory, default_unit,
       ref_low, ref_high, optimal_low, optimal_high, display_order, created_at, updated_at`

func scanBiomarker(row pgx.Row) (*Biomarker, error) {
	var b Biomarker
	err := row.Scan(&b.ID, &b.Code, &b.Name, &b.Category, &b.Subcategory, &b.DefaultUnit,
		&b.RefLow, &b.RefHigh, &b.OptimalLow, &b.OptimalHigh, &b.DisplayOrder, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repoPG) List(ctx context.Context, category string) ([]*Biomarker, error) {
	q := `SELECT ` + biomarkerColumns + ` FROM biomarker ORDER BY display_order, code`
	args := []interface{}{}
	if category != "" {
		q = `SELECT ` + biomarkerColumns + ` FROM biomarker WHERE category = $1 ORDER BY display_order, code`
		args = append(args, category)
	}

	rows, err := r.conn(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("biomarker list: %w", err)
	}
	defer rows.Close()

	var biomarkers []*Biomarker
	for rows.Next() {
		b, err := scanBiomarker(rows)
		if err != nil {
			return nil, err
		}
		biomarkers = append(biomarkers, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachGenderRanges(ctx, biomarkers); err != nil {
		return nil, err
	}
	return biomarkers, nil
}

func (r *repoPG) GetByCode(ctx context.Context, code string) (*Biomarker, error) {
	b, err := scanBiomarker(r.conn(ctx).QueryRow(ctx,
		`SELECT `+biomarkerColumns+` FROM biomarker WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("biomarker", code)
		}
		return nil, fmt.Errorf("biomarker get: %w", err)
	}
	if err := r.attachGenderRanges(ctx, []*Biomarker{b}); err != nil {
		return nil, err
	}
	return b, nil
}

// attachGenderRanges loads gender overrides for the given biomarkers in a
// single query and attaches them by biomarker ID.
func (r *repoPG) attachGenderRanges(ctx context.Context, biomarkers []*Biomarker) error {
	if len(biomarkers) == 0 {
		return nil
	}
	byID := make(map[string]*Biomarker, len(biomarkers))
	ids := make([]string, 0, len(biomarkers))
	for _, b := range biomarkers {
		byID[b.ID.String()] = b
		ids = append(ids, b.ID.String())
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT biomarker_id, gender, ref_low, ref_high, optimal_low, optimal_high
		 FROM biomarker_gender_range WHERE biomarker_id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("gender ranges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var gender Gender
		var ov RangeOverride
		if err := rows.Scan(&id, &gender, &ov.RefLow, &ov.RefHigh, &ov.OptimalLow, &ov.OptimalHigh); err != nil {
			return err
		}
		b, ok := byID[id]
		if !ok {
			continue
		}
		if b.GenderRanges == nil {
			b.GenderRanges = make(map[Gender]RangeOverride)
		}
		b.GenderRanges[gender] = ov
	}
	return rows.Err()
}

func (r *repoPG) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT category, COUNT(*) FROM biomarker GROUP BY category ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	defer rows.Close()

	var counts []CategoryCount
	for rows.Next() {
		var cc CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}

// Upsert inserts or updates a catalog entry keyed on code. Used by the seed
// loader; gender overrides are replaced wholesale.
func (r *repoPG) Upsert(ctx context.Context, b *Biomarker) error {
	conn := r.conn(ctx)

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	err := conn.QueryRow(ctx,
		`INSERT INTO biomarker (id, code, name, category, subcategory, default_unit,
		        ref_low, ref_high, optimal_low, optimal_high, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (code) DO UPDATE SET
		        name = excluded.name,
		        category = excluded.category,
		        subcategory = excluded.subcategory,
		        default_unit = excluded.default_unit,
		        ref_low = excluded.ref_low,
		        ref_high = excluded.ref_high,
		        optimal_low = excluded.optimal_low,
		        optimal_high = excluded.optimal_high,
		        display_order = excluded.display_order,
		        updated_at = NOW()
		 RETURNING id`,
		b.ID, b.Code, b.Name, b.Category, b.Subcategory, b.DefaultUnit,
		b.RefLow, b.RefHigh, b.OptimalLow, b.OptimalHigh, b.DisplayOrder).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("biomarker upsert %s: %w", b.Code, err)
	}

	if _, err := conn.Exec(ctx,
		`DELETE FROM biomarker_gender_range WHERE biomarker_id = $1`, b.ID); err != nil {
		return fmt.Errorf("clear gender ranges %s: %w", b.Code, err)
	}
	for gender, ov := range b.GenderRanges {
		if _, err := conn.Exec(ctx,
			`INSERT INTO biomarker_gender_range (biomarker_id, gender, ref_low, ref_high, optimal_low, optimal_high)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			b.ID, gender, ov.RefLow, ov.RefHigh, ov.OptimalLow, ov.OptimalHigh); err != nil {
			return fmt.Errorf("insert gender range %s/%s: %w", b.Code, gender, err)
		}
	}
	return nil
}
