package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobharvest-automation/internal/models"
	"go-jobharvest-automation/internal/normalize"
)

type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// Managed poolers (PgBouncer in transaction mode) do not play well with
	// prepared statements, so the statement cache stays off.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeFailed    Outcome = "failed"
)

// UpsertResult reports what one atomic upsert did with a draft.
type UpsertResult struct {
	Outcome Outcome
	JobID   string
	Reason  string
}

// Upsert executes the dedup-then-insert sequence as one transaction:
// (1) an exact external_url match is a duplicate; (2) a (title, company)
// match is a duplicate; otherwise company and location are resolved or
// created and the posting inserted. Existing rows are never updated —
// persistence is append-only so repeated runs stay idempotent.
func (r *Repository) Upsert(ctx context.Context, draft *models.JobDraft) (UpsertResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return UpsertResult{Outcome: OutcomeFailed, Reason: err.Error()}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if draft.ExternalURL != "" {
		id, err := r.findByExternalURL(ctx, tx, draft.ExternalURL)
		if err != nil {
			return UpsertResult{Outcome: OutcomeFailed, Reason: err.Error()}, err
		}
		if id != "" {
			return UpsertResult{Outcome: OutcomeDuplicate, JobID: id}, nil
		}
	}

	id, err := r.findByTitleAndCompany(ctx, tx, draft.Title, draft.CompanyName)
	if err != nil {
		return UpsertResult{Outcome: OutcomeFailed, Reason: err.Error()}, err
	}
	if id != "" {
		return UpsertResult{Outcome: OutcomeDuplicate, JobID: id}, nil
	}

	company, err := r.getOrCreateCompany(ctx, tx, draft.CompanyName)
	if err != nil {
		return UpsertResult{Outcome: OutcomeFailed, Reason: err.Error()}, err
	}

	location, err := r.getOrCreateLocation(ctx, tx, draft.City, draft.State, draft.Country)
	if err != nil {
		return UpsertResult{Outcome: OutcomeFailed, Reason: err.Error()}, err
	}

	jobID, err := r.createJobPosting(ctx, tx, draft, company.ID, location.ID)
	if err != nil {
		return UpsertResult{Outcome: OutcomeFailed, Reason: err.Error()}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return UpsertResult{Outcome: OutcomeFailed, Reason: err.Error()}, fmt.Errorf("commit: %w", err)
	}
	return UpsertResult{Outcome: OutcomeCreated, JobID: jobID}, nil
}

func (r *Repository) findByExternalURL(ctx context.Context, tx pgx.Tx, url string) (string, error) {
	var id string
	err := tx.QueryRow(ctx, "SELECT id FROM job_postings WHERE external_url = $1", url).Scan(&id)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find by external url: %w", err)
	}
	return id, nil
}

func (r *Repository) findByTitleAndCompany(ctx context.Context, tx pgx.Tx, title, companyName string) (string, error) {
	var id string
	query := `
		SELECT j.id FROM job_postings j
		JOIN companies c ON c.id = j.company_id
		WHERE j.title = $1 AND c.normalized_name = $2`
	err := tx.QueryRow(ctx, query, title, normalize.Name(companyName)).Scan(&id)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find by title and company: %w", err)
	}
	return id, nil
}

// getOrCreateCompany resolves a company by normalized name, creating it on
// first sight. Extraction never mutates an existing company.
func (r *Repository) getOrCreateCompany(ctx context.Context, tx pgx.Tx, name string) (*models.Company, error) {
	if name == "" {
		name = "Unknown"
	}
	normalized := normalize.Name(name)

	var company models.Company
	err := tx.QueryRow(ctx, "SELECT id, name FROM companies WHERE normalized_name = $1", normalized).
		Scan(&company.ID, &company.Name)
	if err == pgx.ErrNoRows {
		err = tx.QueryRow(ctx,
			"INSERT INTO companies (name, normalized_name) VALUES ($1, $2) RETURNING id, name",
			name, normalized).Scan(&company.ID, &company.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("get or create company: %w", err)
	}
	return &company, nil
}

func (r *Repository) getOrCreateLocation(ctx context.Context, tx pgx.Tx, city, state, country string) (*models.Location, error) {
	var location models.Location
	err := tx.QueryRow(ctx,
		"SELECT id, city, state, country FROM locations WHERE city = $1 AND state = $2 AND country = $3",
		city, state, country).
		Scan(&location.ID, &location.City, &location.State, &location.Country)
	if err == pgx.ErrNoRows {
		err = tx.QueryRow(ctx,
			"INSERT INTO locations (city, state, country) VALUES ($1, $2, $3) RETURNING id, city, state, country",
			city, state, country).Scan(&location.ID, &location.City, &location.State, &location.Country)
	}
	if err != nil {
		return nil, fmt.Errorf("get or create location: %w", err)
	}
	return &location, nil
}

func (r *Repository) createJobPosting(ctx context.Context, tx pgx.Tx, draft *models.JobDraft, companyID, locationID string) (string, error) {
	info, err := json.Marshal(draft.AdditionalInfo)
	if err != nil {
		info = []byte("{}")
	}

	var id string
	query := `
		INSERT INTO job_postings (
			company_id, location_id, title, description_text, description_html,
			salary_raw, salary_min, salary_max, salary_currency, salary_period,
			job_type_raw, job_type, posted_ago, posted_at,
			external_url, external_id, skills, preferred_skills, additional_info
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`
	err = tx.QueryRow(ctx, query,
		companyID, locationID, draft.Title, draft.DescriptionText, draft.DescriptionHTML,
		draft.SalaryRaw, draft.SalaryMin, draft.SalaryMax, draft.SalaryCurrency, draft.SalaryPeriod,
		draft.JobTypeRaw, draft.JobType, draft.PostedAgo, draft.PostedAt,
		nullIfEmpty(draft.ExternalURL), draft.ExternalID, draft.Skills, draft.PreferredSkills, info,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create job posting: %w", err)
	}
	return id, nil
}

// nullIfEmpty keeps the partial unique index on external_url honest: an
// empty URL must not collide with another empty URL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
