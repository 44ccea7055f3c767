package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()
	testDB := NewTestDBManager(t)
	uow := testDB.Manager.CreateUnitOfWork()

	product := &model.Product{Title: "Mug", Price: 250, IsActive: true, CreatedAt: time.Now().UTC()}
	testDB.Create(t, product)

	newEntry := func() *entity.LedgerEntry {
		return &entity.LedgerEntry{
			User:      entity.Ref[*entity.User](1),
			Amount:    -250,
			Reason:    "Product redemption - Mug",
			Type:      entity.TypeRedeem,
			CreatedAt: time.Now().UTC(),
		}
	}

	t.Run("Commit persists every write", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		entry := newEntry()
		require.NoError(t, uow.Ledger(txCtx).Create(txCtx, entry))
		require.NoError(t, uow.Products(txCtx).AppendRedeemer(txCtx, product.ID, 1))
		require.NoError(t, uow.Commit(txCtx))

		_, err = testDB.Repositories().Ledger.GetByID(ctx, entry.ID)
		require.NoError(t, err)

		has, err := testDB.Repositories().Products.HasRedeemer(ctx, product.ID, 1)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("Rollback discards every write", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		entry := newEntry()
		require.NoError(t, uow.Ledger(txCtx).Create(txCtx, entry))
		require.NoError(t, uow.Products(txCtx).AppendRedeemer(txCtx, product.ID, 2))
		require.NoError(t, uow.Rollback(txCtx))

		_, err = testDB.Repositories().Ledger.GetByID(ctx, entry.ID)
		assert.ErrorIs(t, err, errs.ErrLedgerEntryNotFound)

		has, err := testDB.Repositories().Products.HasRedeemer(ctx, product.ID, 2)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("Rollback after commit is tolerated", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Commit(txCtx))
		assert.NoError(t, uow.Rollback(txCtx))
	})

	t.Run("Commit without a transaction", func(t *testing.T) {
		assert.Error(t, uow.Commit(ctx))
	})
}

func TestMigrations(t *testing.T) {
	ctx := context.Background()
	testDB := NewTestDBManager(t)

	migrations, err := testDB.Manager.MigrationManager()
	require.NoError(t, err)

	version, err := migrations.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	t.Run("Re-running is a no-op", func(t *testing.T) {
		require.NoError(t, migrations.MigrateAll(ctx))

		var count int64
		require.NoError(t, testDB.DB().Model(&model.MigrationVersion{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Backfill classifies untyped rows", func(t *testing.T) {
		rows := []*model.LedgerEntry{
			{UserID: 1, Amount: -30, Reason: "Product redemption - Pin", CreatedAt: time.Now().UTC()},
			{UserID: 1, Amount: 30, Reason: "Challenge completed - A", CreatedAt: time.Now().UTC()},
			{UserID: 1, Amount: -5, Reason: "Penalty", CreatedAt: time.Now().UTC()},
		}
		for _, row := range rows {
			testDB.Create(t, row)
		}

		require.NoError(t, migration.NewBackfillTransactionTypes(testDB.DB(), testDB.Logger).Run(ctx))

		var stored []model.LedgerEntry
		require.NoError(t, testDB.DB().Order("id").Find(&stored).Error)
		require.Len(t, stored, 3)
		assert.Equal(t, "redeem", stored[0].TransactionType)
		assert.Equal(t, "earn", stored[1].TransactionType)
		assert.Equal(t, "adjustment", stored[2].TransactionType)
	})

	t.Run("Seed only fills empty tables", func(t *testing.T) {
		require.NoError(t, migration.SeedCatalog(ctx, testDB.DB(), testDB.Logger, testDB.TimeProvider))
		require.NoError(t, migration.SeedCatalog(ctx, testDB.DB(), testDB.Logger, testDB.TimeProvider))

		var challenges, products int64
		require.NoError(t, testDB.DB().Model(&model.Challenge{}).Count(&challenges).Error)
		require.NoError(t, testDB.DB().Model(&model.Product{}).Count(&products).Error)
		assert.Equal(t, int64(3), challenges)
		assert.Equal(t, int64(3), products)
	})
}

func TestManager(t *testing.T) {
	ctx := context.Background()
	testDB := NewTestDBManager(t)

	require.NoError(t, testDB.Manager.Ping(ctx))

	unconnected := NewManager(SQLiteMemoryConfig("unused"), testDB.Logger, testDB.TimeProvider)
	assert.ErrorIs(t, unconnected.Ping(ctx), errs.ErrStoreNotInitialized)

	_, err := unconnected.MigrationManager()
	assert.Error(t, err)

	invalid := DefaultConfig()
	invalid.Driver = "mysql"
	_, err = NewManager(invalid, testDB.Logger, testDB.TimeProvider).Connect(ctx)
	var initErr *errs.InitError
	require.True(t, errors.As(err, &initErr))
	assert.Equal(t, "mysql", initErr.Driver)
}

func TestConfig(t *testing.T) {
	t.Run("Application config", func(t *testing.T) {
		appConf := &config.Config{}
		appConf.Database.Driver = DriverPostgres
		appConf.Database.Host = "db"
		appConf.Database.Port = "6543"
		appConf.Database.Username = "portal"
		appConf.Database.Database = "portal"
		appConf.Database.QueryTimeout = 2 * time.Second

		conf := CreateConfigFromAppConfig(appConf)
		require.NoError(t, conf.Validate())
		assert.Equal(t, 6543, conf.Port)
		assert.Equal(t, 2*time.Second, conf.QueryTimeout)
		assert.Equal(t, "host=db port=6543 user=portal password= dbname=portal sslmode=disable", conf.DSN())
	})

	t.Run("In-memory sqlite", func(t *testing.T) {
		appConf := &config.Config{}
		appConf.Database.Driver = DriverSQLite

		conf := CreateConfigFromAppConfig(appConf)
		require.NoError(t, conf.Validate())
		assert.Equal(t, "file:fanattics?mode=memory&cache=shared", conf.DSN())
		assert.Equal(t, 1, conf.MaxOpenConns)
	})

	t.Run("Invalid settings", func(t *testing.T) {
		conf := DefaultConfig()
		assert.Error(t, conf.Validate(), "postgres needs a host")

		conf.Host = "db"
		conf.Username = "portal"
		conf.Database = "portal"
		conf.SSLMode = "sometimes"
		assert.Error(t, conf.Validate())

		assert.Equal(t, 0, ParsePort("http"))
		assert.Equal(t, 0, ParsePort("70000"))
	})
}

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"Not found", gorm.ErrRecordNotFound, errs.ErrNotFound},
		{"Duplicate", gorm.ErrDuplicatedKey, errs.ErrDuplicate},
		{"Serialization", errors.New("ERROR: could not serialize access due to concurrent update"), errs.ErrUserLocked},
		{"Sqlite busy", errors.New("database is locked"), errs.ErrUserLocked},
		{"Foreign key", errors.New("violates foreign key constraint"), errs.ErrConstraintViolation},
		{"Connection", errors.New("dial tcp: connection refused"), errs.ErrDatabaseConnection},
		{"Other", errors.New("syntax error"), errs.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tt.err, "commit"), tt.expected)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "commit"))
}

func TestSQLHelpers(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType("  select * from ledger"))
	assert.Equal(t, "", extractQueryType("PRAGMA foreign_keys"))
	assert.Equal(t, "ledger", extractTableName(`SELECT * FROM "ledger" WHERE user_id = 1`))
	assert.Equal(t, "user_locks", extractTableName("INSERT INTO user_locks (user_id) VALUES (1)"))
	assert.Equal(t, "products", extractTableName("UPDATE products SET title = 'x'"))
}
