package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"claim_triage/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/go-cmp/cmp"
)

// fakeDynamo answers writes with canned errors and records what it was sent.
type fakeDynamo struct {
	putErr    error
	updateErr error

	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{}, nil
}

func TestClaimItemRoundTrip(t *testing.T) {
	reason := entities.EscalationStructuralDamage
	c := entities.Claim{
		ID:        "c-1",
		Timestamp: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Status:    entities.ClaimStatusPending,
		Damage: entities.Damage{
			Severity:      entities.SeveritySevere,
			Confidence:    91,
			AffectedAreas: []entities.DamageArea{{Name: "hood", Confidence: 88}},
		},
		AIConfidence: entities.AIConfidence{
			Level:            entities.ConfidenceHigh,
			Score:            92,
			NeedsHumanReview: true,
			ReviewType:       entities.ReviewTypeSpecialist,
			ProcessingTime:   40,
			EscalationReason: &reason,
		},
	}

	it, err := toClaimItem(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Seq != c.Timestamp.UnixNano() || it.Status != "pending" {
		t.Fatalf("unexpected item: %+v", it)
	}
	got, err := fromClaimItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(c, got); diff != "" {
		t.Fatalf("claim mismatch (-want +got):\n%s", diff)
	}
}

func TestFromClaimItem_BadPayload(t *testing.T) {
	if _, err := fromClaimItem(claimItem{ID: "x", Payload: "{"}); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestMergeNames(t *testing.T) {
	got := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#id": "id"})
	want := map[string]string{"#a": "a", "#id": "id"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if got := mergeNames(nil, want); len(got) != 2 {
		t.Fatalf("expected passthrough, got %v", got)
	}
}

func TestClaimDynamoRepository_Add(t *testing.T) {
	ctx := context.Background()
	c := entities.Claim{ID: "c-1", Status: entities.ClaimStatusPending}

	t.Run("stores with an existence guard", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewClaimDynamoRepository(ddb, "claims-test")
		if err := repo.Add(ctx, c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ddb.puts) != 1 {
			t.Fatalf("expected one PutItem, got %d", len(ddb.puts))
		}
		in := ddb.puts[0]
		if aws.ToString(in.TableName) != "claims-test" || aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected put input: table=%s cond=%s", aws.ToString(in.TableName), aws.ToString(in.ConditionExpression))
		}
	})

	t.Run("duplicate id is refused", func(t *testing.T) {
		ddb := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}}
		repo := NewClaimDynamoRepository(ddb, "claims-test")
		err := repo.Add(ctx, c)
		if err == nil {
			t.Fatalf("expected duplicate add to fail")
		}
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Fatalf("expected conditional check failure in chain, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("throttled")
		repo := NewClaimDynamoRepository(&fakeDynamo{putErr: boom}, "claims-test")
		if err := repo.Add(ctx, c); !errors.Is(err, boom) {
			t.Fatalf("expected %v, got %v", boom, err)
		}
	})
}

func TestClaimDynamoRepository_Update(t *testing.T) {
	ctx := context.Background()
	c := entities.Claim{ID: "ignored", Status: entities.ClaimStatusApproved}

	t.Run("existing claim", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewClaimDynamoRepository(ddb, "claims-test")
		ok, err := repo.Update(ctx, "c-1", c)
		if err != nil || !ok {
			t.Fatalf("expected (true, nil), got (%v, %v)", ok, err)
		}
		in := ddb.updates[0]
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id)" {
			t.Fatalf("unexpected condition %s", aws.ToString(in.ConditionExpression))
		}
		key, _ := in.Key["id"].(*types.AttributeValueMemberS)
		if key == nil || key.Value != "c-1" {
			t.Fatalf("expected key c-1, got %#v", in.Key["id"])
		}
		status, _ := in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS)
		if status == nil || status.Value != "approved" {
			t.Fatalf("expected status approved, got %#v", in.ExpressionAttributeValues[":status"])
		}
	})

	t.Run("missing claim reports false", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}}
		repo := NewClaimDynamoRepository(ddb, "claims-test")
		ok, err := repo.Update(ctx, "c-404", c)
		if err != nil || ok {
			t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("throttled")
		repo := NewClaimDynamoRepository(&fakeDynamo{updateErr: boom}, "claims-test")
		if _, err := repo.Update(ctx, "c-1", c); !errors.Is(err, boom) {
			t.Fatalf("expected %v, got %v", boom, err)
		}
	})
}
