package db

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/glkeru/cardfee/internal/config"
	models "github.com/glkeru/cardfee/internal/models"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const cardStatusActive = "active"

// Общий пул Postgres
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnectionString())
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

type CardsDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewCardsDB(pool *pgxpool.Pool, logger *zap.Logger) *CardsDB {
	return &CardsDB{pool, logger}
}

func cardsQuery() sq.SelectBuilder {
	return sq.Select("id", "user_id", "annual_fee::text", "status").
		From("cards").
		PlaceholderFormat(sq.Dollar)
}

func scanCard(row pgx.Row) (models.Card, error) {
	var (
		card   models.Card
		user   pgtype.Text
		fee    string
		status string
	)
	if err := row.Scan(&card.ID, &user, &fee, &status); err != nil {
		return models.Card{}, err
	}
	amount, err := decimal.NewFromString(fee)
	if err != nil {
		return models.Card{}, fmt.Errorf("card %s annual_fee %q: %w", card.ID, fee, err)
	}
	card.UserID = user.String
	card.AnnualFee = amount
	card.Active = status == cardStatusActive
	return card, nil
}

func (c *CardsDB) GetCard(ctx context.Context, cardID string) (models.Card, error) {
	sql, args, err := cardsQuery().Where(sq.Eq{"id": cardID}).ToSql()
	if err != nil {
		return models.Card{}, err
	}
	card, err := scanCard(c.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Card{}, fmt.Errorf("card %s %w", cardID, models.ErrNotFound)
		}
		c.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return models.Card{}, err
	}
	return card, nil
}

func (c *CardsDB) ListActiveCards(ctx context.Context) ([]models.Card, error) {
	sql, args, err := cardsQuery().Where(sq.Eq{"status": cardStatusActive}).OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := c.pool.Query(ctx, sql, args...)
	if err != nil {
		c.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}
