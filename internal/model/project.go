// File: internal/model/project.go
package model

// Project 專案資料，與 Naver 為多對多關聯
type Project struct {
	ID      int     `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	OwnerID int     `db:"owner_id" json:"owner_id"`
	Navers  []Naver `db:"-" json:"navers,omitempty"`
}
