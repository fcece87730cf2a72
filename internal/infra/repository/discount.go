package repository

import (
	"context"

	"evcharge/internal/domain/pricing"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/pgconv"
	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type discountRuleRepository struct {
	pool *pgxpool.Pool
}

func NewDiscountRuleRepository(pool *pgxpool.Pool) commands.DiscountRuleRepository {
	return &discountRuleRepository{pool: pool}
}

const discountRuleColumns = `id, station_id, charger_class, day_of_week, start_hour, end_hour, percent, active`

func (r *discountRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.Rule, error) {
	query := `SELECT ` + discountRuleColumns + ` FROM discount_rules WHERE id = $1`

	rule, err := scanDiscountRule(r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount rule", err)
	}
	return rule, nil
}

func (r *discountRuleRepository) FindActiveFor(ctx context.Context, stationID uuid.UUID, chargerClass string) ([]*pricing.Rule, error) {
	query := `SELECT ` + discountRuleColumns + `
		FROM discount_rules
		WHERE station_id = $1 AND charger_class = $2 AND active
		ORDER BY day_of_week, start_hour`

	rows, err := r.pool.Query(ctx, query, pgconv.UUIDToPgtype(stationID), chargerClass)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discount rules", err)
	}
	defer rows.Close()

	var rules []*pricing.Rule
	for rows.Next() {
		rule, err := scanDiscountRule(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount rule", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list discount rules", err)
	}
	return rules, nil
}

func (r *discountRuleRepository) Create(ctx context.Context, rule *pricing.Rule) error {
	const query = `
		INSERT INTO discount_rules (id, station_id, charger_class, day_of_week, start_hour, end_hour, percent, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(rule.ID()),
		pgconv.UUIDToPgtype(rule.StationID()),
		rule.ChargerClass(),
		rule.DayOfWeek(),
		rule.StartHour(),
		rule.EndHour(),
		rule.Percent(),
		rule.Active(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create discount rule", err)
	}
	return nil
}

func (r *discountRuleRepository) Save(ctx context.Context, rule *pricing.Rule) error {
	const query = `
		UPDATE discount_rules
		SET charger_class = $2, day_of_week = $3, start_hour = $4, end_hour = $5, percent = $6, active = $7
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(rule.ID()),
		rule.ChargerClass(),
		rule.DayOfWeek(),
		rule.StartHour(),
		rule.EndHour(),
		rule.Percent(),
		rule.Active(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save discount rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *discountRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM discount_rules WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete discount rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanDiscountRule(row pgx.Row) (*pricing.Rule, error) {
	var (
		id, stationID                 pgtype.UUID
		chargerClass                  string
		dayOfWeek, startHour, endHour int
		percent                       float64
		active                        bool
	)
	err := row.Scan(&id, &stationID, &chargerClass, &dayOfWeek, &startHour, &endHour, &percent, &active)
	if err != nil {
		return nil, err
	}

	return pricing.ReconstructRule(
		uuid.UUID(id.Bytes),
		uuid.UUID(stationID.Bytes),
		chargerClass,
		dayOfWeek,
		startHour,
		endHour,
		percent,
		active,
	), nil
}
