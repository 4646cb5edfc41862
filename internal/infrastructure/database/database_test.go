package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/config"
)

func TestMigrate_SQLiteInMemory(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQL(ctx, config.DriverSQLite, "sqlite://:memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, config.DriverSQLite))
	// Re-running is a no-op.
	require.NoError(t, Migrate(db, config.DriverSQLite))

	for _, table := range []string{"leads", "calculations"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	require.NoError(t, MigrateDown(db, config.DriverSQLite))
	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'leads'`).Scan(&count))
	assert.Zero(t, count)
}

func TestOpenSQL_RejectsNonSQLDriver(t *testing.T) {
	_, err := OpenSQL(context.Background(), config.DriverDynamoDB, "")
	assert.Error(t, err)
	assert.Error(t, Migrate(nil, config.DriverDynamoDB))
}

type fakeTables struct {
	existing map[string]bool
	created  []string
}

func (f *fakeTables) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	name := aws.ToString(in.TableName)
	if !f.existing[name] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	if in.BillingMode != types.BillingModePayPerRequest || aws.ToString(in.KeySchema[0].AttributeName) != "id" {
		return nil, errors.New("unexpected table definition")
	}
	f.existing[name] = true
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureDynamoDBTables(t *testing.T) {
	api := &fakeTables{existing: map[string]bool{"leads": true}}

	err := EnsureDynamoDBTables(context.Background(), api, "leads", "calculations")
	require.NoError(t, err)
	assert.Equal(t, []string{"calculations"}, api.created)
}

type failingTables struct{ fakeTables }

func (f *failingTables) DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return nil, errors.New("access denied")
}

func TestEnsureDynamoDBTables_DescribeError(t *testing.T) {
	err := EnsureDynamoDBTables(context.Background(), &failingTables{}, "leads")
	assert.ErrorContains(t, err, "access denied")
}

func TestNewDynamoDBClient(t *testing.T) {
	client, err := NewDynamoDBClient(context.Background(), config.Config{
		AWSRegion:          "us-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
