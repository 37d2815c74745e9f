package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// dryRunAccountRepo returns a repository that only renders SQL, plus the
// statements it rendered.
func dryRunAccountRepo(t *testing.T) (*accountRepository, *[]string) {
	t.Helper()

	db := newStubDB(t, &stubPool{})
	var rendered []string
	err := db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		rendered = append(rendered, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return &accountRepository{db: db.Session(&gorm.Session{DryRun: true})}, &rendered
}

func TestAccountRepository_Locking(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		find     func(repo *accountRepository) error
		wantLock bool
	}{
		{
			name: "FindByIDForUpdate",
			find: func(repo *accountRepository) error {
				_, err := repo.FindByIDForUpdate(ctx, uuid.New())
				return err
			},
			wantLock: true,
		},
		{
			name: "FindByEmailForUpdate",
			find: func(repo *accountRepository) error {
				_, err := repo.FindByEmailForUpdate(ctx, "ana@mdr.example")
				return err
			},
			wantLock: true,
		},
		{
			name: "FindByID",
			find: func(repo *accountRepository) error {
				_, err := repo.FindByID(ctx, uuid.New())
				return err
			},
		},
		{
			name: "FindByEmail",
			find: func(repo *accountRepository) error {
				_, err := repo.FindByEmail(ctx, "ana@mdr.example")
				return err
			},
		},
		{
			name: "FindByPatientID",
			find: func(repo *accountRepository) error {
				_, err := repo.FindByPatientID(ctx, uuid.New())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, rendered := dryRunAccountRepo(t)

			require.NoError(t, tt.find(repo))
			require.NotEmpty(t, *rendered)

			query := (*rendered)[0]
			assert.Contains(t, query, `FROM "accounts"`)
			assert.Equal(t, tt.wantLock, strings.HasSuffix(query, "FOR UPDATE"), query)
		})
	}
}
