package dynamodb

import (
	"context"
	"fmt"
	"time"

	"aura-backend/application/ports"
	"aura-backend/domain/core/entities"
	"aura-backend/domain/core/valueobjects"
	"aura-backend/domain/lexicon"
	pkgerrors "aura-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ReflectionRepository implements ports.ReflectionRepository using DynamoDB.
// Single-table layout: PK `USER#<id>`, SK `REFLECTION#<rfc3339>#<uuid>` so a
// descending query returns newest entries first.
type ReflectionRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewReflectionRepository creates a new ReflectionRepository
func NewReflectionRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ReflectionRepository {
	return &ReflectionRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// reflectionItem represents the DynamoDB item structure for a reflection
type reflectionItem struct {
	PK              string  `dynamodbav:"PK"`
	SK              string  `dynamodbav:"SK"`
	EntityType      string  `dynamodbav:"EntityType"`
	ReflectionID    string  `dynamodbav:"ReflectionID"`
	UserID          string  `dynamodbav:"UserID"`
	Content         string  `dynamodbav:"Content"`
	DominantEmotion string  `dynamodbav:"DominantEmotion,omitempty"`
	Depth           float64 `dynamodbav:"Depth"`
	CreatedAt       string  `dynamodbav:"CreatedAt"`
}

// Save persists a reflection to DynamoDB
func (r *ReflectionRepository) Save(ctx context.Context, reflection *entities.Reflection) error {
	item := reflectionItem{
		PK:              fmt.Sprintf("USER#%s", reflection.UserID()),
		SK:              fmt.Sprintf("REFLECTION#%s#%s", reflection.CreatedAt().UTC().Format(time.RFC3339), reflection.ID().String()),
		EntityType:      "REFLECTION",
		ReflectionID:    reflection.ID().String(),
		UserID:          reflection.UserID(),
		Content:         reflection.Content().Body(),
		DominantEmotion: string(reflection.DominantEmotion()),
		Depth:           reflection.Depth(),
		CreatedAt:       reflection.CreatedAt().UTC().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal reflection", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("save reflection", err)
	}

	r.logger.Debug("reflection saved",
		zap.String("reflectionID", reflection.ID().String()),
		zap.String("userID", reflection.UserID()),
	)
	return nil
}

// FetchByUser retrieves up to limit reflections for a user, newest first
func (r *ReflectionRepository) FetchByUser(ctx context.Context, userID string, limit int) ([]*entities.Reflection, error) {
	if limit <= 0 {
		limit = 100
	}

	keyCond := expression.Key("PK").Equal(expression.Value(fmt.Sprintf("USER#%s", userID))).
		And(expression.Key("SK").BeginsWith("REFLECTION#"))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("build reflection query", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false), // newest first
		Limit:                     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("query reflections", err)
	}

	reflections := make([]*entities.Reflection, 0, len(out.Items))
	for _, raw := range out.Items {
		var item reflectionItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("skipping unreadable reflection item", zap.Error(err))
			continue
		}

		reflection, err := r.toEntity(item)
		if err != nil {
			// Malformed entries are skipped individually, not fatal.
			r.logger.Warn("skipping malformed reflection",
				zap.String("reflectionID", item.ReflectionID),
				zap.Error(err),
			)
			continue
		}
		reflections = append(reflections, reflection)
	}

	return reflections, nil
}

// CountByUser returns the total reflection count for a user
func (r *ReflectionRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(fmt.Sprintf("USER#%s", userID))).
		And(expression.Key("SK").BeginsWith("REFLECTION#"))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("build reflection count", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Select:                    types.SelectCount,
	})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("count reflections", err)
	}

	return int(out.Count), nil
}

func (r *ReflectionRepository) toEntity(item reflectionItem) (*entities.Reflection, error) {
	id, err := valueobjects.NewReflectionIDFromString(item.ReflectionID)
	if err != nil {
		return nil, err
	}

	content, err := valueobjects.NewReflectionContent(item.Content)
	if err != nil {
		return nil, err
	}

	createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid CreatedAt: %w", err)
	}

	return entities.ReconstructReflection(
		id,
		item.UserID,
		content,
		lexicon.EmotionCategory(item.DominantEmotion),
		item.Depth,
		createdAt,
	)
}
