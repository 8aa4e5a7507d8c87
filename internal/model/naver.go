// File: internal/model/naver.go
package model

import "time"

// Naver 員工資料，owner 於建立時由伺服器指定且不可變更
type Naver struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Birthdate     time.Time `db:"birthdate" json:"birthdate"`
	AdmissionDate time.Time `db:"admission_date" json:"admission_date"`
	JobRole       string    `db:"job_role" json:"job_role"`
	OwnerID       int       `db:"owner_id" json:"owner_id"`
	Projects      []Project `db:"-" json:"projects,omitempty"`
}
