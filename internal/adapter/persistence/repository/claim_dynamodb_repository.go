package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClaimsTableName = "claims"

type claimItem struct {
	ID        string `dynamodbav:"id"`
	Seq       int64  `dynamodbav:"seq"`
	Status    string `dynamodbav:"status"`
	Payload   string `dynamodbav:"payload"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ClaimDynamoAPI is the slice of the DynamoDB client the repository calls.
// *dynamodb.Client satisfies it.
type ClaimDynamoAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// ClaimDynamoRepository persists claims in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// seq holds the creation time in nanoseconds and restores insertion order on List.
// The claim document lives in payload so an update rewrites it in one UpdateItem.
type ClaimDynamoRepository struct {
	ddb       ClaimDynamoAPI
	tableName string
}

var (
	_ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)
	_ ClaimDynamoAPI              = (*dynamodb.Client)(nil)
)

func NewClaimDynamoRepository(ddb ClaimDynamoAPI, tableName string) *ClaimDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("CLAIMS_TABLE", defaultClaimsTableName)
	}
	return &ClaimDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClaimDynamoRepository) Add(ctx context.Context, c entities.Claim) error {
	it, err := toClaimItem(c)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("claim %s already stored: %w", c.ID, err)
		}
		return err
	}
	return nil
}

func (r *ClaimDynamoRepository) Update(ctx context.Context, id string, c entities.Claim) (bool, error) {
	c.ID = id
	payload, err := json.Marshal(c)
	if err != nil {
		return false, fmt.Errorf("encode claim %s: %w", id, err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #payload = :payload, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payload":    &types.AttributeValueMemberS{Value: string(payload)},
			":status":     &types.AttributeValueMemberS{Value: string(c.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#payload":    "payload",
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ClaimDynamoRepository) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it)
}

func (r *ClaimDynamoRepository) List(ctx context.Context) ([]entities.Claim, error) {
	var items []claimItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []claimItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Seq < items[j].Seq })

	out := make([]entities.Claim, 0, len(items))
	for _, it := range items {
		c, err := fromClaimItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func toClaimItem(c entities.Claim) (claimItem, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return claimItem{}, fmt.Errorf("encode claim %s: %w", c.ID, err)
	}
	created := c.Timestamp.UTC()
	if created.IsZero() {
		created = time.Now().UTC()
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return claimItem{
		ID:        c.ID,
		Seq:       created.UnixNano(),
		Status:    string(c.Status),
		Payload:   string(payload),
		CreatedAt: created.Format(time.RFC3339Nano),
		UpdatedAt: now,
	}, nil
}

func fromClaimItem(it claimItem) (entities.Claim, error) {
	var c entities.Claim
	if err := json.Unmarshal([]byte(it.Payload), &c); err != nil {
		return entities.Claim{}, fmt.Errorf("decode claim %s (seq %d): %w", it.ID, it.Seq, err)
	}
	return c, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
