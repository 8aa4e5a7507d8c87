package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"navedex/internal/database"
	"navedex/internal/model"

	"github.com/jackc/pgx/v5"
)

// NaverFilter 列表查詢的等值過濾條件，零值欄位代表未指定
type NaverFilter struct {
	Name          string
	AdmissionDate *time.Time
	JobRole       string
}

func ListNavers(ctx context.Context, db database.DB, ownerID int, f NaverFilter) ([]model.Naver, error) {
	query := `SELECT id, name, birthdate, admission_date, job_role, owner_id
		 FROM navers WHERE owner_id = $1`
	args := []any{ownerID}
	if f.Name != "" {
		args = append(args, f.Name)
		query += fmt.Sprintf(" AND name = $%d", len(args))
	}
	if f.AdmissionDate != nil {
		args = append(args, *f.AdmissionDate)
		query += fmt.Sprintf(" AND admission_date = $%d", len(args))
	}
	if f.JobRole != "" {
		args = append(args, f.JobRole)
		query += fmt.Sprintf(" AND job_role = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListNavers: %w", err)
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
			return nil, fmt.Errorf("ListNavers: %w", err)
		}
		navers = append(navers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListNavers: %w", err)
	}
	return navers, nil
}

// CreateNaver 建立 Naver 並繫結 projectIDs，整批在同一交易內完成
// 任一關聯 id 不存在或不屬於擁有者時整筆回滾
func CreateNaver(ctx context.Context, db database.DB, n *model.Naver, projectIDs []int) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("CreateNaver: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO navers (name, birthdate, admission_date, job_role, owner_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		n.Name,
		n.Birthdate,
		n.AdmissionDate,
		n.JobRole,
		n.OwnerID,
	)
	if err := row.Scan(&n.ID); err != nil {
		return fmt.Errorf("CreateNaver: %w", err)
	}

	projects, err := linkNaverProjects(ctx, tx, n.ID, n.OwnerID, projectIDs)
	if err != nil {
		return fmt.Errorf("CreateNaver: %w", err)
	}
	n.Projects = projects

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("CreateNaver: %w", err)
	}
	return nil
}

// GetNaverDetail 取得擁有者名下的 Naver，含展開的 Project 關聯
func GetNaverDetail(ctx context.Context, db database.DB, id, ownerID int) (*model.Naver, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, birthdate, admission_date, job_role, owner_id
		 FROM navers WHERE id = $1 AND owner_id = $2`,
		id,
		ownerID,
	)
	n := &model.Naver{}
	if err := row.Scan(
		&n.ID,
		&n.Name,
		&n.Birthdate,
		&n.AdmissionDate,
		&n.JobRole,
		&n.OwnerID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetNaverDetail: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetNaverDetail: %w", err)
	}

	rows, err := db.Query(ctx,
		`SELECT p.id, p.name, p.owner_id
		 FROM projects p
		 JOIN naver_projects np ON np.project_id = p.id
		 WHERE np.naver_id = $1
		 ORDER BY p.id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("GetNaverDetail: %w", err)
	}
	defer rows.Close()

	n.Projects = []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.OwnerID); err != nil {
			return nil, fmt.Errorf("GetNaverDetail: %w", err)
		}
		n.Projects = append(n.Projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetNaverDetail: %w", err)
	}
	return n, nil
}

// UpdateNaver 更新擁有者名下的 Naver
// projectIDs 為 nil 時不動關聯，非 nil 時整組替換為指定清單
func UpdateNaver(ctx context.Context, db database.DB, n *model.Naver, projectIDs *[]int) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("UpdateNaver: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE navers
		 SET name = $1, birthdate = $2, admission_date = $3, job_role = $4
		 WHERE id = $5 AND owner_id = $6`,
		n.Name,
		n.Birthdate,
		n.AdmissionDate,
		n.JobRole,
		n.ID,
		n.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("UpdateNaver: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateNaver: %w", ErrNotFound)
	}

	if projectIDs != nil {
		if _, err := tx.Exec(ctx,
			`DELETE FROM naver_projects WHERE naver_id = $1`, n.ID,
		); err != nil {
			return fmt.Errorf("UpdateNaver: %w", err)
		}
		projects, err := linkNaverProjects(ctx, tx, n.ID, n.OwnerID, *projectIDs)
		if err != nil {
			return fmt.Errorf("UpdateNaver: %w", err)
		}
		n.Projects = projects
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("UpdateNaver: %w", err)
	}
	return nil
}

func DeleteNaver(ctx context.Context, db database.DB, id, ownerID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM navers WHERE id = $1 AND owner_id = $2`,
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteNaver: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteNaver: %w", ErrNotFound)
	}
	return nil
}

// linkNaverProjects 驗證 projectIDs 均屬於 ownerID 後寫入關聯列
// 回傳繫結到的 Project，供回應組裝使用
func linkNaverProjects(ctx context.Context, tx pgx.Tx, naverID, ownerID int, projectIDs []int) ([]model.Project, error) {
	if len(projectIDs) == 0 {
		return []model.Project{}, nil
	}

	rows, err := tx.Query(ctx,
		`SELECT id, name, owner_id
		 FROM projects WHERE id = ANY($1) AND owner_id = $2
		 ORDER BY id`,
		projectIDs,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.OwnerID); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(projects) != uniqueCount(projectIDs) {
		return nil, ErrRelatedNotFound
	}

	for _, p := range projects {
		if _, err := tx.Exec(ctx,
			`INSERT INTO naver_projects (naver_id, project_id) VALUES ($1, $2)`,
			naverID,
			p.ID,
		); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func uniqueCount(ids []int) int {
	seen := map[int]struct{}{}
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
