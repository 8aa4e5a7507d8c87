package store

import (
	"context"
	"errors"
	"fmt"

	"navedex/internal/database"
	"navedex/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProjectFilter 列表查詢的等值過濾條件，零值欄位代表未指定
type ProjectFilter struct {
	Name string
}

func ListProjects(ctx context.Context, db database.DB, ownerID int, f ProjectFilter) ([]model.Project, error) {
	query := `SELECT id, name, owner_id FROM projects WHERE owner_id = $1`
	args := []any{ownerID}
	if f.Name != "" {
		args = append(args, f.Name)
		query += fmt.Sprintf(" AND name = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.OwnerID); err != nil {
			return nil, fmt.Errorf("ListProjects: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	return projects, nil
}

// CreateProject 建立 Project 並繫結 naverIDs，整批在同一交易內完成
func CreateProject(ctx context.Context, db database.DB, p *model.Project, naverIDs []int) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("CreateProject: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO projects (name, owner_id)
		 VALUES ($1, $2)
		 RETURNING id`,
		p.Name,
		p.OwnerID,
	)
	if err := row.Scan(&p.ID); err != nil {
		return fmt.Errorf("CreateProject: %w", err)
	}

	navers, err := linkProjectNavers(ctx, tx, p.ID, p.OwnerID, naverIDs)
	if err != nil {
		return fmt.Errorf("CreateProject: %w", err)
	}
	p.Navers = navers

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("CreateProject: %w", err)
	}
	return nil
}

// GetProjectDetail 取得擁有者名下的 Project，含展開的 Naver 關聯
func GetProjectDetail(ctx context.Context, db database.DB, id, ownerID int) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, owner_id
		 FROM projects WHERE id = $1 AND owner_id = $2`,
		id,
		ownerID,
	)
	p := &model.Project{}
	if err := row.Scan(&p.ID, &p.Name, &p.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetProjectDetail: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetProjectDetail: %w", err)
	}

	rows, err := db.Query(ctx,
		`SELECT n.id, n.name, n.birthdate, n.admission_date, n.job_role, n.owner_id
		 FROM navers n
		 JOIN naver_projects np ON np.naver_id = n.id
		 WHERE np.project_id = $1
		 ORDER BY n.id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("GetProjectDetail: %w", err)
	}
	defer rows.Close()

	p.Navers = []model.Naver{}
	for rows.Next() {
		var n model.Naver
		if err := rows.Scan(
			&n.ID,
			&n.Name,
			&n.Birthdate,
			&n.AdmissionDate,
			&n.JobRole,
			&n.OwnerID,
		); err != nil {
			return nil, fmt.Errorf("GetProjectDetail: %w", err)
		}
		p.Navers = append(p.Navers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetProjectDetail: %w", err)
	}
	return p, nil
}

// UpdateProject 更新擁有者名下的 Project
// naverIDs 為 nil 時不動關聯，非 nil 時整組替換為指定清單
func UpdateProject(ctx context.Context, db database.DB, p *model.Project, naverIDs *[]int) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("UpdateProject: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE projects SET name = $1
		 WHERE id = $2 AND owner_id = $3`,
		p.Name,
		p.ID,
		p.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateProject: %w", ErrNotFound)
	}

	if naverIDs != nil {
		if _, err := tx.Exec(ctx,
			`DELETE FROM naver_projects WHERE project_id = $1`, p.ID,
		); err != nil {
			return fmt.Errorf("UpdateProject: %w", err)
		}
		navers, err := linkProjectNavers(ctx, tx, p.ID, p.OwnerID, *naverIDs)
		if err != nil {
			return fmt.Errorf("UpdateProject: %w", err)
		}
		p.Navers = navers
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("UpdateProject: %w", err)
	}
	return nil
}

func DeleteProject(ctx context.Context, db database.DB, id, ownerID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND owner_id = $2`,
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProject: %w", ErrNotFound)
	}
	return nil
}

// linkProjectNavers 驗證 naverIDs 均屬於 ownerID 後寫入關聯列
func linkProjectNavers(ctx context.Context, tx pgx.Tx, projectID, ownerID int, naverIDs []int) ([]model.Naver, error) {
	if len(naverIDs) == 0 {
		return []model.Naver{}, nil
	}

	rows, err := tx.Query(ctx,
		`SELECT id, name, birthdate, admission_date, job_role, owner_id
		 FROM navers WHERE id = ANY($1) AND owner_id = $2
		 ORDER BY id`,
		naverIDs,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	navers := []model.Naver{}
	for rows.Next() {
		var n model.Naver
		if err := rows.Scan(
			&n.ID,
			&n.Name,
			&n.Birthdate,
			&n.AdmissionDate,
			&n.JobRole,
			&n.OwnerID,
		); err != nil {
			return nil, err
		}
		navers = append(navers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(navers) != uniqueCount(naverIDs) {
		return nil, ErrRelatedNotFound
	}

	for _, n := range navers {
		if _, err := tx.Exec(ctx,
			`INSERT INTO naver_projects (naver_id, project_id) VALUES ($1, $2)`,
			n.ID,
			projectID,
		); err != nil {
			return nil, err
		}
	}
	return navers, nil
}
