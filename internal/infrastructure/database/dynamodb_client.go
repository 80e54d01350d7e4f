package database

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client backing the claim store.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}

	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	log.Printf("[claims][dynamodb] client ready region=%s endpoint=%q", cfg.Region, endpoint)
	return client, nil
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
