package dynamodb

import (
	"context"
	"fmt"
	"time"

	"aura-backend/application/ports"
	pkgerrors "aura-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// JourneyRepository implements ports.JourneyRepository using DynamoDB.
// Summaries are written by an offline aggregation job; this side only reads.
type JourneyRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewJourneyRepository creates a new JourneyRepository
func NewJourneyRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.JourneyRepository {
	return &JourneyRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// journeyItem represents the DynamoDB item structure for a precomputed summary
type journeyItem struct {
	PK               string   `dynamodbav:"PK"`
	SK               string   `dynamodbav:"SK"`
	EntityType       string   `dynamodbav:"EntityType"`
	GrowthScore      float64  `dynamodbav:"GrowthScore"`
	ActivatedNodes   []int    `dynamodbav:"ActivatedNodes"`
	DominantEmotions []string `dynamodbav:"DominantEmotions"`
	Insights         []string `dynamodbav:"Insights"`
	ComputedAt       string   `dynamodbav:"ComputedAt"`
}

// GetPrecomputed returns a stored summary for the user, or nil when none
// exists. Absence is not an error.
func (r *JourneyRepository) GetPrecomputed(ctx context.Context, userID string) (*ports.JourneySummary, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", userID)},
			"SK": &types.AttributeValueMemberS{Value: "JOURNEY#SUMMARY"},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get journey summary", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var item journeyItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		r.logger.Warn("unreadable journey summary, ignoring",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, nil
	}

	computedAt, err := time.Parse(time.RFC3339, item.ComputedAt)
	if err != nil {
		computedAt = time.Time{}
	}

	return &ports.JourneySummary{
		GrowthScore:      item.GrowthScore,
		ActivatedNodes:   item.ActivatedNodes,
		DominantEmotions: item.DominantEmotions,
		Insights:         item.Insights,
		ComputedAt:       computedAt,
	}, nil
}
