package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Erros de armazenamento; a camada de serviço traduz para a taxonomia de negócio
var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
)

// Postgres implementa a persistência de predictions e opinions
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// CreatePrediction insere uma prediction já ativa; created_at fica por conta do banco
func (p *Postgres) CreatePrediction(ctx context.Context, question, category string, expiry time.Time) (string, error) {
	id := uuid.NewString()
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO predictions (id, question, category, expiry_time, active)
		VALUES ($1,$2,$3,$4,TRUE)`,
		id, question, category, expiry,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetPrediction busca uma prediction pelo id
func (p *Postgres) GetPrediction(ctx context.Context, id string) (*Prediction, error) {
	var (
		pr      Prediction
		created sql.NullTime
	)
	err := p.db.QueryRowContext(ctx, `
		SELECT id, question, category, expiry_time, active, created_at
		FROM predictions
		WHERE id = $1`, id).
		Scan(&pr.ID, &pr.Question, &pr.Category, &pr.ExpiryTime, &pr.Active, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if created.Valid {
		pr.CreatedAt = &created.Time
	}
	return &pr, nil
}

// ListActive retorna as predictions com active = TRUE; category é filtro
// opcional de igualdade exata
func (p *Postgres) ListActive(ctx context.Context, category string) ([]Prediction, error) {
	q := `
		SELECT id, question, category, expiry_time, active, created_at
		FROM predictions
		WHERE active = TRUE`
	var args []any
	if category != "" {
		q += ` AND category = $1`
		args = append(args, category)
	}
	q += ` ORDER BY created_at`

	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Prediction
	for rows.Next() {
		var (
			pr      Prediction
			created sql.NullTime
		)
		if err := rows.Scan(&pr.ID, &pr.Question, &pr.Category, &pr.ExpiryTime, &pr.Active, &created); err != nil {
			return nil, err
		}
		if created.Valid {
			pr.CreatedAt = &created.Time
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

// HasOpinion verifica se o usuário já opinou nessa prediction
func (p *Postgres) HasOpinion(ctx context.Context, predictionID, userID string) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM opinions WHERE prediction_id = $1 AND user_id = $2)`,
		predictionID, userID).Scan(&exists)
	return exists, err
}

// CreateOpinion insere a opinion; o índice único (prediction_id, user_id)
// decide quando duas submissões concorrentes passam pelo check de duplicata
func (p *Postgres) CreateOpinion(ctx context.Context, predictionID, userID, opinion string, amount float64) (string, error) {
	id := uuid.NewString()
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO opinions (id, prediction_id, user_id, opinion, amount)
		VALUES ($1,$2,$3,$4,$5)`,
		id, predictionID, userID, opinion, amount,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return "", ErrDuplicate
		}
		return "", err
	}
	return id, nil
}
