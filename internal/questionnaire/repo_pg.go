package questionnaire

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"fedventura-backend/internal/advisor"
	"fedventura-backend/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) SaveSubmission(ctx context.Context, userID string, answers advisor.Answers, recs []advisor.BusinessRecommendation) error {
	return db.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		const upsert = `
INSERT INTO questionnaire_responses
  (id, user_id, motivation, skills, idea, commitment, commitment_other, resources, location, structure, goals, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  motivation = EXCLUDED.motivation,
  skills = EXCLUDED.skills,
  idea = EXCLUDED.idea,
  commitment = EXCLUDED.commitment,
  commitment_other = EXCLUDED.commitment_other,
  resources = EXCLUDED.resources,
  location = EXCLUDED.location,
  structure = EXCLUDED.structure,
  goals = EXCLUDED.goals,
  updated_at = now()`
		if _, err := tx.ExecContext(ctx, upsert,
			uuid.NewString(),
			userID,
			nullableString(answers[advisor.QuestionMotivation]),
			nullableString(answers[advisor.QuestionSkills]),
			nullableString(answers[advisor.QuestionIdea]),
			nullableString(answers[advisor.QuestionCommitment]),
			nullableString(answers[advisor.KeyCommitmentOther]),
			nullableString(answers[advisor.QuestionResources]),
			nullableString(answers[advisor.QuestionLocation]),
			nullableString(answers[advisor.QuestionStructure]),
			nullableString(answers[advisor.QuestionGoals]),
		); err != nil {
			return fmt.Errorf("upsert questionnaire response: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM business_recommendations WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("delete recommendations: %w", err)
		}

		const insert = `
INSERT INTO business_recommendations
  (id, user_id, title, description, startup_cost, time_to_profit, skills_needed, next_steps, order_index, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`
		for i, rec := range recs {
			if _, err := tx.ExecContext(ctx, insert,
				uuid.NewString(),
				userID,
				rec.Title,
				nullableString(rec.Description),
				nullableString(rec.StartupCost),
				nullableString(rec.TimeToProfit),
				rec.SkillsNeeded,
				rec.NextSteps,
				i,
			); err != nil {
				return fmt.Errorf("insert recommendation %d: %w", i, err)
			}
		}
		return nil
	})
}

func (r *PGRepo) Latest(ctx context.Context, userID string) (Saved, error) {
	const answersQuery = `
SELECT motivation, skills, idea, commitment, commitment_other, resources, location, structure, goals, updated_at
FROM questionnaire_responses
WHERE user_id = $1
LIMIT 1`
	cols := make([]sql.NullString, 9)
	var updatedAt time.Time
	dest := make([]any, 0, len(cols)+1)
	for i := range cols {
		dest = append(dest, &cols[i])
	}
	dest = append(dest, &updatedAt)
	if err := r.DB.QueryRowContext(ctx, answersQuery, userID).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Saved{}, ErrNotFound
		}
		return Saved{}, err
	}
	keys := []string{
		advisor.QuestionMotivation,
		advisor.QuestionSkills,
		advisor.QuestionIdea,
		advisor.QuestionCommitment,
		advisor.KeyCommitmentOther,
		advisor.QuestionResources,
		advisor.QuestionLocation,
		advisor.QuestionStructure,
		advisor.QuestionGoals,
	}
	saved := Saved{Answers: advisor.Answers{}, UpdatedAt: updatedAt}
	for i, key := range keys {
		if cols[i].Valid {
			saved.Answers[key] = cols[i].String
		}
	}

	const recsQuery = `
SELECT title, description, startup_cost, time_to_profit, skills_needed, next_steps
FROM business_recommendations
WHERE user_id = $1
ORDER BY order_index ASC`
	rows, err := r.DB.QueryContext(ctx, recsQuery, userID)
	if err != nil {
		return Saved{}, err
	}
	defer rows.Close()

	types := pgtype.NewMap()
	for rows.Next() {
		var rec advisor.BusinessRecommendation
		var description, startupCost, timeToProfit sql.NullString
		if err := rows.Scan(
			&rec.Title,
			&description,
			&startupCost,
			&timeToProfit,
			types.SQLScanner(&rec.SkillsNeeded),
			types.SQLScanner(&rec.NextSteps),
		); err != nil {
			return Saved{}, err
		}
		rec.Description = description.String
		rec.StartupCost = startupCost.String
		rec.TimeToProfit = timeToProfit.String
		saved.Recommendations = append(saved.Recommendations, rec)
	}
	if err := rows.Err(); err != nil {
		return Saved{}, err
	}
	return saved, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
