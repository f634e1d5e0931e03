package repository

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tracker-rental/internal/database"
	"tracker-rental/pkg/apierr"
)

func newMockRepository(t *testing.T) (ClientRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewClientRepository(&database.Database{DB: gdb}), mock
}

func TestClientRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		rows := sqlmock.NewRows([]string{"id_cliente", "nome", "email"}).
			AddRow("c1", "Ana", "ana@x.com")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "clientes" WHERE id_cliente = $1`)).
			WithArgs("c1", 1).
			WillReturnRows(rows)

		client, err := repo.FindByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Ana", client.Nome)
		assert.Equal(t, "ana@x.com", client.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "clientes" WHERE id_cliente = $1`)).
			WithArgs("missing", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id_cliente", "nome", "email"}))

		_, err := repo.FindByID(ctx, "missing")

		var apiErr *apierr.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "Cliente não encontrado", apiErr.Message)
	})
}

func TestClientRepository_FindAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"id_cliente", "nome", "email"}).
		AddRow("c1", "Ana", "ana@x.com").
		AddRow("c2", "Bruno", "bruno@x.com")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "clientes"`)).
		WillReturnRows(rows)

	clients, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "c2", clients[1].ID)
}

func TestClientRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Deleted", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "clientes" WHERE id_cliente = $1`)).
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(ctx, "c1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing row reported as not found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "clientes" WHERE id_cliente = $1`)).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Delete(ctx, "missing")

		var apiErr *apierr.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
	})
}
