package store

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uabench/pkg/evaluation"
	"github.com/dmitrymomot/uabench/pkg/provider"
)

// Store is the persistence contract of a benchmark run.
type Store interface {
	// SaveProvider inserts or updates the provider keyed by its name.
	SaveProvider(ctx context.Context, info provider.Info) (ProviderRecord, error)
	Providers(ctx context.Context) ([]ProviderRecord, error)

	// UserAgentByHash returns ErrNotFound for unknown hashes.
	UserAgentByHash(ctx context.Context, hash string) (UserAgent, error)
	// SaveUserAgent inserts ua unless its hash is already stored and returns
	// the stored row either way.
	SaveUserAgent(ctx context.Context, ua UserAgent) (UserAgent, error)
	UserAgent(ctx context.Context, id uuid.UUID) (UserAgent, error)
	UserAgents(ctx context.Context) ([]UserAgent, error)

	// SaveResults upserts results keyed by (provider, user agent).
	SaveResults(ctx context.Context, results []ResultRecord) error

	// ResultFieldRows returns, for every resolved result of the provider, the
	// result's column value and the joined values of every other resolved
	// result for the same user agent.
	ResultFieldRows(ctx context.Context, providerID uuid.UUID, column string) ([]ResultFieldRow, error)
	// UserAgentFieldRows returns, for every user agent, the joined column
	// values of all its resolved results.
	UserAgentFieldRows(ctx context.Context, column string) ([]UserAgentFieldRow, error)

	SaveResultEvaluations(ctx context.Context, evals []ResultEvaluationRecord) error
	SaveUserAgentEvaluations(ctx context.Context, evals []UserAgentEvaluationRecord) error
	UserAgentEvaluations(ctx context.Context, userAgentID uuid.UUID) ([]UserAgentEvaluationRecord, error)

	ResultStats(ctx context.Context) ([]ResultStat, error)
	UserAgentStats(ctx context.Context) ([]UserAgentStat, error)
}

type ProviderRecord struct {
	ID uuid.UUID `json:"id"`
	provider.Info
}

type UserAgent struct {
	ID        uuid.UUID `json:"id"`
	Hash      string    `json:"hash"`
	String    string    `json:"user_agent"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserAgent prepares a user agent row with a fresh ID and its hash.
func NewUserAgent(ua, source string) UserAgent {
	return UserAgent{
		ID:     uuid.New(),
		Hash:   Hash(ua),
		String: ua,
		Source: source,
	}
}

// Hash is the natural key of a user agent string: hex SHA-1.
func Hash(ua string) string {
	sum := sha1.Sum([]byte(ua))
	return hex.EncodeToString(sum[:])
}

// ResultRecord is one provider's answer for one user agent. Unresolved
// records keep an empty Result.
type ResultRecord struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	UserAgentID uuid.UUID
	Resolved    bool
	Result      provider.Result
}

type ResultFieldRow struct {
	ResultID uuid.UUID
	Current  string
	Others   *string
}

type UserAgentFieldRow struct {
	UserAgentID uuid.UUID
	Values      *string
}

type ResultEvaluationRecord struct {
	ResultID uuid.UUID
	Column   string
	// Found reports a non-empty value of the evaluated result.
	Found bool
	evaluation.ResultEvaluation
}

type UserAgentEvaluationRecord struct {
	UserAgentID uuid.UUID `json:"user_agent_id"`
	Column      string    `json:"column"`
	evaluation.UserAgentEvaluation
}

// ResultStat aggregates the evaluations of one provider for one column.
type ResultStat struct {
	ProviderID       uuid.UUID `json:"provider_id" yaml:"-"`
	Provider         string    `json:"provider" yaml:"provider"`
	Column           string    `json:"column" yaml:"column"`
	Results          int       `json:"results" yaml:"results"`
	Found            int       `json:"found" yaml:"found"`
	Agreed           int       `json:"agreed" yaml:"agreed"`
	HarmonizedAgreed int       `json:"harmonized_agreed" yaml:"harmonized_agreed"`
}

// UserAgentStat aggregates the user agent evaluations of one column.
// Unanimous user agents have at least one value and a single harmonized
// value; disputed ones have more than one.
type UserAgentStat struct {
	Column     string `json:"column" yaml:"column"`
	UserAgents int    `json:"user_agents" yaml:"user_agents"`
	Unanimous  int    `json:"unanimous" yaml:"unanimous"`
	Disputed   int    `json:"disputed" yaml:"disputed"`
}
