package dynamodb

import (
	"context"
	"fmt"

	"aura-backend/application/ports"
	pkgerrors "aura-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ThemeStore implements ports.ThemeProvider using DynamoDB.
type ThemeStore struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewThemeStore creates a new ThemeStore
func NewThemeStore(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ThemeProvider {
	return &ThemeStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// GetTheme returns the stored theme string, empty when unset
func (s *ThemeStore) GetTheme(ctx context.Context, userID string) (string, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", userID)},
			"SK": &types.AttributeValueMemberS{Value: "THEME"},
		},
	})
	if err != nil {
		return "", pkgerrors.NewDatabaseError("get theme", err)
	}
	if out.Item == nil {
		return "", nil
	}

	if v, ok := out.Item["Theme"].(*types.AttributeValueMemberS); ok {
		return v.Value, nil
	}
	return "", nil
}

// SetTheme stores the theme string; empty clears it
func (s *ThemeStore) SetTheme(ctx context.Context, userID string, theme string) error {
	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", userID)},
		"SK": &types.AttributeValueMemberS{Value: "THEME"},
	}

	if theme == "" {
		_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.tableName),
			Key:       key,
		})
		if err != nil {
			return pkgerrors.NewDatabaseError("clear theme", err)
		}
		return nil
	}

	item := map[string]types.AttributeValue{
		"PK":         key["PK"],
		"SK":         key["SK"],
		"EntityType": &types.AttributeValueMemberS{Value: "THEME"},
		"Theme":      &types.AttributeValueMemberS{Value: theme},
	}

	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("save theme", err)
	}

	s.logger.Debug("theme stored", zap.String("userID", userID), zap.String("theme", theme))
	return nil
}
