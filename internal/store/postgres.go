package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/uabench/pkg/evaluation"
	"github.com/dmitrymomot/uabench/pkg/pg"
	"github.com/dmitrymomot/uabench/pkg/provider"
)

// DB is the subset of *pgxpool.Pool the store uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Postgres is the Store backed by the goose schema in internal/db/migrations.
// Joined values are ordered by provider registration.
type Postgres struct {
	db DB
}

var _ Store = (*Postgres)(nil)

func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

const upsertProvider = `
INSERT INTO providers (id, name, package, version, homepage, detects)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (name) DO UPDATE
SET package = EXCLUDED.package,
    version = EXCLUDED.version,
    homepage = EXCLUDED.homepage,
    detects = EXCLUDED.detects
RETURNING id`

func (s *Postgres) SaveProvider(ctx context.Context, info provider.Info) (ProviderRecord, error) {
	if strings.TrimSpace(info.Name) == "" {
		return ProviderRecord{}, ErrEmptyProviderName
	}
	detects, err := json.Marshal(info.Detects)
	if err != nil {
		return ProviderRecord{}, errors.Join(ErrFailedToSave, err)
	}

	rec := ProviderRecord{Info: info}
	err = s.db.QueryRow(ctx, upsertProvider,
		uuid.New(), info.Name, info.Package, info.Version, info.Homepage, detects,
	).Scan(&rec.ID)
	if err != nil {
		return ProviderRecord{}, errors.Join(ErrFailedToSave, err)
	}
	return rec, nil
}

func (s *Postgres) Providers(ctx context.Context) ([]ProviderRecord, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, name, package, version, homepage, detects
FROM providers
ORDER BY created_at, name`)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ProviderRecord, error) {
		var (
			rec     ProviderRecord
			detects []byte
		)
		if err := row.Scan(&rec.ID, &rec.Name, &rec.Package, &rec.Version, &rec.Homepage, &detects); err != nil {
			return rec, err
		}
		return rec, json.Unmarshal(detects, &rec.Detects)
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	return out, nil
}

const selectUserAgent = `SELECT id, hash, user_agent, source, created_at FROM user_agents`

func scanUserAgent(row pgx.Row) (UserAgent, error) {
	var ua UserAgent
	err := row.Scan(&ua.ID, &ua.Hash, &ua.String, &ua.Source, &ua.CreatedAt)
	return ua, err
}

func (s *Postgres) UserAgentByHash(ctx context.Context, hash string) (UserAgent, error) {
	ua, err := scanUserAgent(s.db.QueryRow(ctx, selectUserAgent+` WHERE hash = $1`, hash))
	return ua, queryError(err)
}

func (s *Postgres) UserAgent(ctx context.Context, id uuid.UUID) (UserAgent, error) {
	ua, err := scanUserAgent(s.db.QueryRow(ctx, selectUserAgent+` WHERE id = $1`, id))
	return ua, queryError(err)
}

// The no-op update makes RETURNING yield the existing row on conflict.
const upsertUserAgent = `
INSERT INTO user_agents (id, hash, user_agent, source)
VALUES ($1, $2, $3, $4)
ON CONFLICT (hash) DO UPDATE SET hash = EXCLUDED.hash
RETURNING id, hash, user_agent, source, created_at`

func (s *Postgres) SaveUserAgent(ctx context.Context, ua UserAgent) (UserAgent, error) {
	if ua.String == "" {
		return UserAgent{}, ErrEmptyUserAgent
	}
	if ua.Hash == "" {
		ua.Hash = Hash(ua.String)
	}
	if ua.ID == uuid.Nil {
		ua.ID = uuid.New()
	}

	saved, err := scanUserAgent(s.db.QueryRow(ctx, upsertUserAgent, ua.ID, ua.Hash, ua.String, ua.Source))
	if err != nil {
		return UserAgent{}, errors.Join(ErrFailedToSave, err)
	}
	return saved, nil
}

func (s *Postgres) UserAgents(ctx context.Context) ([]UserAgent, error) {
	rows, err := s.db.Query(ctx, selectUserAgent+` ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (UserAgent, error) {
		return scanUserAgent(row)
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	return out, nil
}

const upsertResult = `
INSERT INTO results (
    id, provider_id, user_agent_id, resolved,
    browser_name, browser_version, engine_name, engine_version, os_name, os_version,
    device_model, device_brand, device_type, is_mobile, is_touch,
    is_bot, bot_name, bot_type, parse_time_us
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
ON CONFLICT (provider_id, user_agent_id) DO UPDATE
SET resolved = EXCLUDED.resolved,
    browser_name = EXCLUDED.browser_name,
    browser_version = EXCLUDED.browser_version,
    engine_name = EXCLUDED.engine_name,
    engine_version = EXCLUDED.engine_version,
    os_name = EXCLUDED.os_name,
    os_version = EXCLUDED.os_version,
    device_model = EXCLUDED.device_model,
    device_brand = EXCLUDED.device_brand,
    device_type = EXCLUDED.device_type,
    is_mobile = EXCLUDED.is_mobile,
    is_touch = EXCLUDED.is_touch,
    is_bot = EXCLUDED.is_bot,
    bot_name = EXCLUDED.bot_name,
    bot_type = EXCLUDED.bot_type,
    parse_time_us = EXCLUDED.parse_time_us,
    created_at = now()`

func (s *Postgres) SaveResults(ctx context.Context, results []ResultRecord) error {
	batch := &pgx.Batch{}
	for _, r := range results {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		res := r.Result
		if !r.Resolved {
			res = provider.Result{ParseTime: res.ParseTime}
		}
		batch.Queue(upsertResult,
			r.ID, r.ProviderID, r.UserAgentID, r.Resolved,
			res.Browser.Name, res.Browser.Version, res.Engine.Name, res.Engine.Version, res.OS.Name, res.OS.Version,
			res.Device.Model, res.Device.Brand, res.Device.Type, res.Device.IsMobile, res.Device.IsTouch,
			res.Bot.IsBot, res.Bot.Name, res.Bot.Type, res.ParseTime.Microseconds(),
		)
	}
	return s.sendBatch(ctx, batch)
}

// Column names are validated against provider.Columns before being spliced in.
const resultFieldRows = `
SELECT r.id, r.%[1]s,
       (SELECT string_agg(o.%[1]s, '%[2]s' ORDER BY p.created_at, p.name)
          FROM results o
          JOIN providers p ON p.id = o.provider_id
         WHERE o.user_agent_id = r.user_agent_id
           AND o.provider_id <> r.provider_id
           AND o.resolved)
FROM results r
JOIN user_agents u ON u.id = r.user_agent_id
WHERE r.provider_id = $1 AND r.resolved
ORDER BY u.created_at, u.id`

func (s *Postgres) ResultFieldRows(ctx context.Context, providerID uuid.UUID, column string) ([]ResultFieldRow, error) {
	ident, err := columnIdent(column)
	if err != nil {
		return nil, err
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM providers WHERE id = $1)`, providerID).Scan(&exists); err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, providerID)
	}

	rows, err := s.db.Query(ctx, fmt.Sprintf(resultFieldRows, ident, evaluation.Separator), providerID)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ResultFieldRow, error) {
		var r ResultFieldRow
		err := row.Scan(&r.ResultID, &r.Current, &r.Others)
		return r, err
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	return out, nil
}

// FILTER leaves the aggregate NULL when no resolved result exists.
const userAgentFieldRows = `
SELECT u.id,
       string_agg(r.%[1]s, '%[2]s' ORDER BY p.created_at, p.name) FILTER (WHERE r.resolved)
FROM user_agents u
LEFT JOIN results r ON r.user_agent_id = u.id
LEFT JOIN providers p ON p.id = r.provider_id
GROUP BY u.id
ORDER BY u.created_at, u.id`

func (s *Postgres) UserAgentFieldRows(ctx context.Context, column string) ([]UserAgentFieldRow, error) {
	ident, err := columnIdent(column)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, fmt.Sprintf(userAgentFieldRows, ident, evaluation.Separator))
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (UserAgentFieldRow, error) {
		var r UserAgentFieldRow
		err := row.Scan(&r.UserAgentID, &r.Values)
		return r, err
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	return out, nil
}

const upsertResultEvaluation = `
INSERT INTO result_evaluations (result_id, column_name, found, same_result_count, harmonized_same_result_count)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (result_id, column_name) DO UPDATE
SET found = EXCLUDED.found,
    same_result_count = EXCLUDED.same_result_count,
    harmonized_same_result_count = EXCLUDED.harmonized_same_result_count`

func (s *Postgres) SaveResultEvaluations(ctx context.Context, evals []ResultEvaluationRecord) error {
	batch := &pgx.Batch{}
	for _, e := range evals {
		batch.Queue(upsertResultEvaluation,
			e.ResultID, e.Column, e.Found, e.SameResultCount, e.HarmonizedSameResultCount)
	}
	return s.sendBatch(ctx, batch)
}

const upsertUserAgentEvaluation = `
INSERT INTO user_agent_evaluations (
    user_agent_id, column_name, found_count, found_count_unique, max_same_result_count,
    harmonized_found_unique, harmonized_max_same_result_count, "values", harmonized_values
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_agent_id, column_name) DO UPDATE
SET found_count = EXCLUDED.found_count,
    found_count_unique = EXCLUDED.found_count_unique,
    max_same_result_count = EXCLUDED.max_same_result_count,
    harmonized_found_unique = EXCLUDED.harmonized_found_unique,
    harmonized_max_same_result_count = EXCLUDED.harmonized_max_same_result_count,
    "values" = EXCLUDED."values",
    harmonized_values = EXCLUDED.harmonized_values`

func (s *Postgres) SaveUserAgentEvaluations(ctx context.Context, evals []UserAgentEvaluationRecord) error {
	batch := &pgx.Batch{}
	for _, e := range evals {
		values, err := jsonList(e.Values)
		if err != nil {
			return errors.Join(ErrFailedToSave, err)
		}
		harmonized, err := jsonList(e.UniqueHarmonizedValues)
		if err != nil {
			return errors.Join(ErrFailedToSave, err)
		}
		batch.Queue(upsertUserAgentEvaluation,
			e.UserAgentID, e.Column, e.FoundCount, e.FoundCountUnique, e.MaxSameResultCount,
			e.HarmonizedFoundUnique, e.HarmonizedMaxSameResultCount, values, harmonized)
	}
	return s.sendBatch(ctx, batch)
}

func (s *Postgres) UserAgentEvaluations(ctx context.Context, userAgentID uuid.UUID) ([]UserAgentEvaluationRecord, error) {
	if _, err := s.UserAgent(ctx, userAgentID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
SELECT user_agent_id, column_name, found_count, found_count_unique, max_same_result_count,
       harmonized_found_unique, harmonized_max_same_result_count, "values", harmonized_values
FROM user_agent_evaluations
WHERE user_agent_id = $1`, userAgentID)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (UserAgentEvaluationRecord, error) {
		var (
			e                  UserAgentEvaluationRecord
			values, harmonized []byte
		)
		err := row.Scan(&e.UserAgentID, &e.Column, &e.FoundCount, &e.FoundCountUnique, &e.MaxSameResultCount,
			&e.HarmonizedFoundUnique, &e.HarmonizedMaxSameResultCount, &values, &harmonized)
		if err != nil {
			return e, err
		}
		if err := json.Unmarshal(values, &e.Values); err != nil {
			return e, err
		}
		return e, json.Unmarshal(harmonized, &e.UniqueHarmonizedValues)
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}

	slices.SortFunc(out, func(a, b UserAgentEvaluationRecord) int {
		return columnOrder(a.Column) - columnOrder(b.Column)
	})
	return out, nil
}

func (s *Postgres) ResultStats(ctx context.Context) ([]ResultStat, error) {
	rows, err := s.db.Query(ctx, `
SELECT p.id, p.name, e.column_name,
       count(*),
       count(*) FILTER (WHERE e.found),
       count(*) FILTER (WHERE e.same_result_count > 0),
       count(*) FILTER (WHERE e.harmonized_same_result_count > 0)
FROM result_evaluations e
JOIN results r ON r.id = e.result_id
JOIN providers p ON p.id = r.provider_id
GROUP BY p.id, p.name, e.column_name
ORDER BY p.name, e.column_name`)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ResultStat, error) {
		var s ResultStat
		err := row.Scan(&s.ProviderID, &s.Provider, &s.Column, &s.Results, &s.Found, &s.Agreed, &s.HarmonizedAgreed)
		return s, err
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	return out, nil
}

func (s *Postgres) UserAgentStats(ctx context.Context) ([]UserAgentStat, error) {
	rows, err := s.db.Query(ctx, `
SELECT column_name,
       count(*),
       count(*) FILTER (WHERE found_count > 0 AND harmonized_found_unique = 1),
       count(*) FILTER (WHERE harmonized_found_unique > 1)
FROM user_agent_evaluations
GROUP BY column_name
ORDER BY column_name`)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (UserAgentStat, error) {
		var s UserAgentStat
		err := row.Scan(&s.Column, &s.UserAgents, &s.Unanimous, &s.Disputed)
		return s, err
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	return out, nil
}

func (s *Postgres) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	br := s.db.SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if pg.IsForeignKeyViolationError(err) {
				return errors.Join(ErrFailedToSave, ErrNotFound, err)
			}
			return errors.Join(ErrFailedToSave, err)
		}
	}
	if err := br.Close(); err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func columnIdent(column string) (string, error) {
	if _, err := provider.ColumnByName(column); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	return pgx.Identifier{column}.Sanitize(), nil
}

// columnOrder is the report position of a column; unknown columns sort last.
func columnOrder(column string) int {
	i := slices.IndexFunc(provider.Columns, func(c provider.Column) bool { return c.Name == column })
	if i < 0 {
		return len(provider.Columns)
	}
	return i
}

func jsonList(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

func queryError(err error) error {
	switch {
	case err == nil:
		return nil
	case pg.IsNotFoundError(err):
		return ErrNotFound
	default:
		return errors.Join(ErrFailedToQuery, err)
	}
}
