package store

import (
	"context"
	"testing"
	"time"

	"navedex/internal/database"
	"navedex/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var (
	birth = time.Date(1992, 2, 2, 0, 0, 0, 0, time.UTC)
	adm   = time.Date(2020, 9, 11, 0, 0, 0, 0, time.UTC)
)

func naverRow(id int, name string, owner int) []any {
	return []any{id, name, birth, adm, "Designer", owner}
}

func TestListNavers(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "WHERE owner_id = $1")
				require.NotContains(t, sql, "AND")
				require.Equal(t, []any{1}, args)
				return &fakeRows{data: [][]any{naverRow(1, "A", 1), naverRow(2, "B", 1)}}, nil
			},
		}
		navers, err := ListNavers(ctx, db, 1, NaverFilter{})
		require.NoError(t, err)
		require.Len(t, navers, 2)
		require.Equal(t, "A", navers[0].Name)
	})

	t.Run("all filters combined with AND", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "AND name = $2")
				require.Contains(t, sql, "AND admission_date = $3")
				require.Contains(t, sql, "AND job_role = $4")
				require.Equal(t, []any{1, "A", adm, "Designer"}, args)
				return &fakeRows{data: [][]any{naverRow(1, "A", 1)}}, nil
			},
		}
		d := adm
		navers, err := ListNavers(ctx, db, 1, NaverFilter{Name: "A", AdmissionDate: &d, JobRole: "Designer"})
		require.NoError(t, err)
		require.Len(t, navers, 1)
	})

	t.Run("empty result", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{}, nil
			},
		}
		navers, err := ListNavers(ctx, db, 1, NaverFilter{})
		require.NoError(t, err)
		require.NotNil(t, navers)
		require.Empty(t, navers)
	})
}

func TestCreateNaver(t *testing.T) {
	ctx := context.Background()

	t.Run("success with projects", func(t *testing.T) {
		joinInserts := 0
		tx := &fakeTx{}
		tx.queryRowFn = func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "INSERT INTO navers")
			return &fakeRow{vals: []any{10}}
		}
		tx.queryFn = func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "FROM projects")
			require.Equal(t, []int{5, 6}, args[0])
			require.Equal(t, 1, args[1])
			return &fakeRows{data: [][]any{{5, "P5", 1}, {6, "P6", 1}}}, nil
		}
		tx.execFn = func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "INSERT INTO naver_projects")
			joinInserts++
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		}
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		n := model.Naver{Name: "A", Birthdate: birth, AdmissionDate: adm, JobRole: "Designer", OwnerID: 1}
		require.NoError(t, CreateNaver(ctx, db, &n, []int{5, 6}))
		require.Equal(t, 10, n.ID)
		require.Len(t, n.Projects, 2)
		require.Equal(t, 2, joinInserts)
		require.True(t, tx.committed)
	})

	t.Run("dangling project id rolls back", func(t *testing.T) {
		tx := &fakeTx{}
		tx.queryRowFn = func(context.Context, string, ...any) pgx.Row {
			return &fakeRow{vals: []any{10}}
		}
		tx.queryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			// 只找到一筆，第二個 id 不存在或不屬於擁有者
			return &fakeRows{data: [][]any{{5, "P5", 1}}}, nil
		}
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		n := model.Naver{OwnerID: 1}
		err := CreateNaver(ctx, db, &n, []int{5, 99})
		require.ErrorIs(t, err, ErrRelatedNotFound)
		require.True(t, tx.rolledBack)
		require.False(t, tx.committed)
	})

	t.Run("no projects skips link query", func(t *testing.T) {
		tx := &fakeTx{}
		tx.queryRowFn = func(context.Context, string, ...any) pgx.Row {
			return &fakeRow{vals: []any{11}}
		}
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		n := model.Naver{OwnerID: 1}
		require.NoError(t, CreateNaver(ctx, db, &n, nil))
		require.Equal(t, 11, n.ID)
		require.Empty(t, n.Projects)
		require.True(t, tx.committed)
	})
}

func TestGetNaverDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("success with nested projects", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "id = $1 AND owner_id = $2")
				require.Equal(t, []any{10, 1}, args)
				return &fakeRow{vals: naverRow(10, "A", 1)}
			},
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "JOIN naver_projects")
				return &fakeRows{data: [][]any{{5, "P5", 1}}}, nil
			},
		}
		n, err := GetNaverDetail(ctx, db, 10, 1)
		require.NoError(t, err)
		require.Equal(t, "A", n.Name)
		require.Len(t, n.Projects, 1)
		require.Equal(t, "P5", n.Projects[0].Name)
	})

	t.Run("other owner is not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{err: pgx.ErrNoRows}
			},
		}
		_, err := GetNaverDetail(ctx, db, 10, 2)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateNaver(t *testing.T) {
	ctx := context.Background()

	t.Run("nil projectIDs leaves associations", func(t *testing.T) {
		tx := &fakeTx{}
		tx.execFn = func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "UPDATE navers")
			return pgconn.NewCommandTag("UPDATE 1"), nil
		}
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		n := model.Naver{ID: 10, OwnerID: 1, Name: "A", Birthdate: birth, AdmissionDate: adm, JobRole: "Dev"}
		require.NoError(t, UpdateNaver(ctx, db, &n, nil))
		require.True(t, tx.committed)
	})

	t.Run("empty set replacement clears associations", func(t *testing.T) {
		var deleted bool
		tx := &fakeTx{}
		tx.execFn = func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			if sql == `DELETE FROM naver_projects WHERE naver_id = $1` {
				deleted = true
				return pgconn.NewCommandTag("DELETE 2"), nil
			}
			return pgconn.NewCommandTag("UPDATE 1"), nil
		}
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		n := model.Naver{ID: 10, OwnerID: 1}
		empty := []int{}
		require.NoError(t, UpdateNaver(ctx, db, &n, &empty))
		require.True(t, deleted)
		require.Empty(t, n.Projects)
		require.True(t, tx.committed)
	})

	t.Run("not owner", func(t *testing.T) {
		tx := &fakeTx{}
		tx.execFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		}
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		n := model.Naver{ID: 10, OwnerID: 2}
		err := UpdateNaver(ctx, db, &n, nil)
		require.ErrorIs(t, err, ErrNotFound)
		require.False(t, tx.committed)
	})
}

func TestDeleteNaver(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "DELETE FROM navers")
				require.Equal(t, []any{10, 1}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteNaver(ctx, db, 10, 1))
	})

	t.Run("second delete is not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteNaver(ctx, db, 10, 1), ErrNotFound)
	})
}
