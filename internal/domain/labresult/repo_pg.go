package labresult

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

func conn(ctx context.Context, pool *pgxpool.Pool) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return pool
}

// ---- Panels ----

type panelRepoPG struct{ pool *pgxpool.Pool }

// NewPanelRepoPG creates a PostgreSQL-backed panel repository.
func NewPanelRepoPG(pool *pgxpool.Pool) PanelRepository { return &panelRepoPG{pool: pool} }

func (r *panelRepoPG) Create(ctx context.Context, p *Panel) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = PanelPending
	}
	err := conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO lab_panel (id, patient_id, lab_provider, patient_gender, reported_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		p.ID, p.PatientID, p.LabProvider, p.PatientGender, p.ReportedAt, p.Status).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("panel create: %w", err)
	}
	return nil
}

func (r *panelRepoPG) Get(ctx context.Context, id uuid.UUID) (*Panel, error) {
	var p Panel
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, patient_id, lab_provider, patient_gender, reported_at, status, created_at, updated_at
		 FROM lab_panel WHERE id = $1`, id).
		Scan(&p.ID, &p.PatientID, &p.LabProvider, &p.PatientGender, &p.ReportedAt, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("panel", id.String())
		}
		return nil, fmt.Errorf("panel get: %w", err)
	}
	return &p, nil
}

func (r *panelRepoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status PanelStatus) error {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE lab_panel SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("panel status update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("panel", id.String())
	}
	return nil
}

// ---- Results ----

type resultRepoPG struct{ pool *pgxpool.Pool }

// NewResultRepoPG creates a PostgreSQL-backed result repository.
func NewResultRepoPG(pool *pgxpool.Pool) ResultRepository { return &resultRepoPG{pool: pool} }

const resultColumns = `id, panel_id, biomarker_id, biomarker_code, raw_name, raw_value, raw_unit,
       raw_code, operator, numeric_value, normalized_unit, flag, confidence, manual_entry, created_at`

func scanResult(row pgx.Row) (*Result, error) {
	var res Result
	err := row.Scan(&res.ID, &res.PanelID, &res.BiomarkerID, &res.BiomarkerCode, &res.RawName,
		&res.RawValue, &res.RawUnit, &res.RawCode, &res.Operator, &res.NumericValue,
		&res.NormalizedUnit, &res.Flag, &res.Confidence, &res.ManualEntry, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resultRepoPG) Insert(ctx context.Context, res *Result) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	err := conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO lab_result (id, panel_id, biomarker_id, biomarker_code, raw_name, raw_value,
		        raw_unit, raw_code, operator, numeric_value, normalized_unit, flag, confidence, manual_entry)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING created_at`,
		res.ID, res.PanelID, res.BiomarkerID, res.BiomarkerCode, res.RawName, res.RawValue,
		res.RawUnit, res.RawCode, res.Operator, res.NumericValue, res.NormalizedUnit,
		res.Flag, res.Confidence, res.ManualEntry).
		Scan(&res.CreatedAt)
	if err != nil {
		return fmt.Errorf("result insert: %w", err)
	}
	return nil
}

func (r *resultRepoPG) Get(ctx context.Context, id uuid.UUID) (*Result, error) {
	res, err := scanResult(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+resultColumns+` FROM lab_result WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("result", id.String())
		}
		return nil, fmt.Errorf("result get: %w", err)
	}
	return res, nil
}

func (r *resultRepoPG) ListByPanel(ctx context.Context, panelID uuid.UUID, needsReviewOnly bool) ([]*Result, error) {
	q := `SELECT ` + resultColumns + ` FROM lab_result WHERE panel_id = $1 ORDER BY created_at, raw_name`
	if needsReviewOnly {
		q = `SELECT ` + resultColumns + ` FROM lab_result
		     WHERE panel_id = $1 AND (biomarker_id IS NULL OR confidence < 1.0)
		     ORDER BY created_at, raw_name`
	}
	return r.list(ctx, q, panelID)
}

func (r *resultRepoPG) ListReviewQueue(ctx context.Context, limit int) ([]*Result, error) {
	if limit <= 0 {
		limit = 100
	}
	return r.list(ctx,
		`SELECT `+resultColumns+` FROM lab_result
		 WHERE biomarker_id IS NULL OR confidence < 1.0
		 ORDER BY created_at LIMIT $1`, limit)
}

func (r *resultRepoPG) list(ctx context.Context, q string, args ...interface{}) ([]*Result, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("result list: %w", err)
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func (r *resultRepoPG) AddNote(ctx context.Context, n *Note) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	err := conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO lab_result_note (id, result_id, author, note)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		n.ID, n.ResultID, n.Author, n.Note).
		Scan(&n.CreatedAt)
	if err != nil {
		return fmt.Errorf("note insert: %w", err)
	}
	return nil
}

func (r *resultRepoPG) ListNotes(ctx context.Context, resultID uuid.UUID) ([]*Note, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT id, result_id, author, note, created_at
		 FROM lab_result_note WHERE result_id = $1 ORDER BY created_at`, resultID)
	if err != nil {
		return nil, fmt.Errorf("note list: %w", err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.ResultID, &n.Author, &n.Note, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, &n)
	}
	return notes, rows.Err()
}
