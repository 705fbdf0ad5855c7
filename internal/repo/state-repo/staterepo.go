package staterepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/discipline/internal/domain"
	"github.com/GlebRadaev/discipline/internal/pg"
)

const stateColumns = `id, total_work_minutes, used_movie, used_youtube, used_instagram, used_snack_money::text`

var usedColumns = map[domain.RewardType]string{
	domain.RewardMovie:      "used_movie",
	domain.RewardYoutube:    "used_youtube",
	domain.RewardInstagram:  "used_instagram",
	domain.RewardSnackMoney: "used_snack_money",
}

var ErrUnknownRewardType = errors.New("unknown reward type")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanState(row pgx.Row) (*domain.UserState, error) {
	var (
		state domain.UserState
		snack string
	)
	err := row.Scan(&state.ID, &state.TotalWorkMinutes, &state.UsedMovie, &state.UsedYoutube, &state.UsedInstagram, &snack)
	if err != nil {
		return nil, err
	}
	state.UsedSnackMoney, err = decimal.NewFromString(snack)
	if err != nil {
		return nil, fmt.Errorf("parse used_snack_money %q: %w", snack, err)
	}
	return &state, nil
}

func (r *Repository) GetUserState(ctx context.Context, userID int) (*domain.UserState, error) {
	query := `
        SELECT ` + stateColumns + `
        FROM user_state
        WHERE id = $1
    `
	state, err := scanState(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user state", zap.Error(err))
		return nil, err
	}
	return state, nil
}

// CreateUserState seeds a zeroed row; an existing row is left untouched.
func (r *Repository) CreateUserState(ctx context.Context, userID int) error {
	query := `
        INSERT INTO user_state (id)
        VALUES ($1)
        ON CONFLICT (id) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to create user state", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddWorkMinutes(ctx context.Context, userID int, minutes int) (*domain.UserState, error) {
	query := `
        UPDATE user_state
        SET total_work_minutes = total_work_minutes + $1
        WHERE id = $2
        RETURNING ` + stateColumns

	var updated *domain.UserState
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := scanState(r.db.QueryRow(ctx, query, minutes, userID))
		if err != nil {
			zap.L().Error("failed to add work minutes", zap.Int("minutes", minutes), zap.Error(err))
			return err
		}
		updated = state
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddUsed increments the consumed amount of rewardType in one statement.
// Integral reward types are credited with the integer part of amount.
func (r *Repository) AddUsed(ctx context.Context, userID int, rewardType domain.RewardType, amount decimal.Decimal) (*domain.UserState, error) {
	column, ok := usedColumns[rewardType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRewardType, rewardType)
	}

	var (
		arg         any
		placeholder = "$1"
	)
	if rewardType.Integral() {
		arg = int(amount.IntPart())
	} else {
		arg = amount.String()
		placeholder = "$1::numeric"
	}

	query := fmt.Sprintf(`
        UPDATE user_state
        SET %[1]s = %[1]s + %[2]s
        WHERE id = $2
        RETURNING `+stateColumns, column, placeholder)

	var updated *domain.UserState
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := scanState(r.db.QueryRow(ctx, query, arg, userID))
		if err != nil {
			zap.L().Error("failed to add used reward",
				zap.String("type", string(rewardType)),
				zap.String("amount", amount.String()),
				zap.Error(err),
			)
			return err
		}
		updated = state
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
