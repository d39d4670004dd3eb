package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glkeru/cardfee/internal/config"
	models "github.com/glkeru/cardfee/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type RulesDB struct {
	mgo    *mongo.Client
	coll   *mongo.Collection
	logger *zap.Logger
}

// ruleDocument хранимое представление правила, суммы строками
type ruleDocument struct {
	ID                string     `bson:"id"`
	CardID            string     `bson:"card_id"`
	RuleGroupID       string     `bson:"rule_group_id,omitempty"`
	ConditionType     string     `bson:"condition_type"`
	ConditionValue    *string    `bson:"condition_value,omitempty"`
	ConditionCount    *int64     `bson:"condition_count,omitempty"`
	ConditionCategory string     `bson:"condition_category,omitempty"`
	ConditionPeriod   string     `bson:"condition_period"`
	LogicalOperator   string     `bson:"logical_operator,omitempty"`
	Priority          int        `bson:"priority"`
	IsEnabled         bool       `bson:"is_enabled"`
	EffectiveFrom     *time.Time `bson:"effective_from,omitempty"`
	EffectiveTo       *time.Time `bson:"effective_to,omitempty"`
	CreatedAt         time.Time  `bson:"created_at"`
}

func NewRulesDB(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*RulesDB, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	coll := client.Database(cfg.Database).Collection(cfg.Collection)

	// индексы: выборка по карте и поиск по id
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "card_id", Value: 1}, {Key: "priority", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create rule indexes: %w", err)
	}

	return &RulesDB{client, coll, logger}, nil
}

func (r *RulesDB) Close(ctx context.Context) error {
	return r.mgo.Disconnect(ctx)
}

// Все правила карты по приоритету
func (r *RulesDB) GetRules(ctx context.Context, cardID string) ([]models.WaiverRule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"card_id": cardID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []ruleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	rules := make([]models.WaiverRule, 0, len(docs))
	for _, doc := range docs {
		rule, err := doc.toRule()
		if err != nil {
			r.logger.Error("Decode rule",
				zap.String("card_id", cardID),
				zap.String("rule_id", doc.ID),
				zap.Error(err),
			)
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r *RulesDB) GetRule(ctx context.Context, ruleID uuid.UUID) (models.WaiverRule, error) {
	var doc ruleDocument
	err := r.coll.FindOne(ctx, bson.M{"id": ruleID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.WaiverRule{}, fmt.Errorf("rule %s %w", ruleID, models.ErrNotFound)
		}
		return models.WaiverRule{}, err
	}
	return doc.toRule()
}

// Создать/обновить правило
func (r *RulesDB) SaveRule(ctx context.Context, rule models.WaiverRule) (models.WaiverRule, error) {
	// если ID пустой, значит новое правило
	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now().UTC()
	}
	doc := toDocument(rule)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return models.WaiverRule{}, err
	}
	return rule, nil
}

func toDocument(rule models.WaiverRule) ruleDocument {
	doc := ruleDocument{
		ID:                rule.ID.String(),
		CardID:            rule.CardID,
		RuleGroupID:       rule.RuleGroupID,
		ConditionType:     string(rule.ConditionType),
		ConditionCount:    rule.ConditionCount,
		ConditionCategory: rule.ConditionCategory,
		ConditionPeriod:   string(rule.ConditionPeriod),
		LogicalOperator:   string(rule.LogicalOperator),
		Priority:          rule.Priority,
		IsEnabled:         rule.IsEnabled,
		EffectiveFrom:     rule.EffectiveFrom,
		EffectiveTo:       rule.EffectiveTo,
		CreatedAt:         rule.CreatedAt,
	}
	if rule.ConditionValue.Valid {
		v := rule.ConditionValue.Decimal.String()
		doc.ConditionValue = &v
	}
	return doc
}

func (d ruleDocument) toRule() (models.WaiverRule, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.WaiverRule{}, fmt.Errorf("rule id %q: %w", d.ID, err)
	}
	rule := models.WaiverRule{
		ID:                id,
		CardID:            d.CardID,
		RuleGroupID:       d.RuleGroupID,
		ConditionType:     models.ConditionType(d.ConditionType),
		ConditionCount:    d.ConditionCount,
		ConditionCategory: d.ConditionCategory,
		ConditionPeriod:   models.Period(d.ConditionPeriod),
		LogicalOperator:   models.LogicalOperator(d.LogicalOperator),
		Priority:          d.Priority,
		IsEnabled:         d.IsEnabled,
		EffectiveFrom:     d.EffectiveFrom,
		EffectiveTo:       d.EffectiveTo,
		CreatedAt:         d.CreatedAt,
	}
	if d.ConditionValue != nil {
		v, err := decimal.NewFromString(*d.ConditionValue)
		if err != nil {
			return models.WaiverRule{}, fmt.Errorf("rule %s condition_value %q: %w", d.ID, *d.ConditionValue, err)
		}
		rule.ConditionValue = decimal.NewNullDecimal(v)
	}
	return rule, nil
}
