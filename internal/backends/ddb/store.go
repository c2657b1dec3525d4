package ddb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Store implements ports.KeyValueStore with one item per document.
type Store struct {
	table string
	cli   *dynamodb.Client
}

type prefItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Value     string `dynamodbav:"value"`
	UpdatedAt int64  `dynamodbav:"updated_at"`
}

func NewStore(table string, cli *dynamodb.Client) *Store {
	// Creates the table only if it doesn't exist.
	createTableIfNotExists(cli, table)
	return &Store{table: table, cli: cli}
}

func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	out, err := s.cli.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &s.table,
		Key:            itemKey(key),
		ConsistentRead: awsBool(true),
	})
	if err != nil {
		return "", false, err
	}
	if out.Item == nil {
		return "", false, nil
	}
	var it prefItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Value, true, nil
}

func (s *Store) SetString(ctx context.Context, key, value string) error {
	item, err := attributevalue.MarshalMap(prefItem{
		PK:        pkPref(key),
		SK:        skValue(),
		Value:     value,
		UpdatedAt: time.Now().Unix(),
	})
	if err != nil {
		return err
	}
	_, err = s.cli.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.table,
		Item:      item,
	})
	return err
}

func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.cli.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.table,
		Key:       itemKey(key),
	})
	return err
}

// ClearAll drops and recreates the table. Used in tests only.
func (s *Store) ClearAll(ctx context.Context) error {
	_, err := s.cli.DeleteTable(ctx, &dynamodb.DeleteTableInput{
		TableName: &s.table,
	})
	if err != nil {
		return err
	}
	// wait until the table is deleted
	err = dynamodb.NewTableNotExistsWaiter(s.cli).Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	}, 30*time.Second)
	if err != nil {
		return err
	}
	createTableIfNotExists(s.cli, s.table)
	return nil
}

func itemKey(key string) map[string]ddbTypes.AttributeValue {
	return map[string]ddbTypes.AttributeValue{
		"PK": &ddbTypes.AttributeValueMemberS{Value: pkPref(key)},
		"SK": &ddbTypes.AttributeValueMemberS{Value: skValue()},
	}
}
