package api

import "navedex/internal/model"

// DateLayout 日期欄位一律使用 ISO 8601 (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// NaverResponse 列表用的摘要格式，不含關聯
// swagger:model api.NaverResponse
type NaverResponse struct {
	ID            int    `json:"id" example:"1"`
	Name          string `json:"name" example:"Fulano de Tal"`
	Birthdate     string `json:"birthdate" example:"1992-02-02"`
	AdmissionDate string `json:"admission_date" example:"2020-09-11"`
	JobRole       string `json:"job_role" example:"Designer"`
}

// NaverCreateResponse 建立/更新後的回應，關聯以 id 清單表示
// swagger:model api.NaverCreateResponse
type NaverCreateResponse struct {
	NaverResponse
	Projects []int `json:"projects"`
}

// NaverDetailResponse 單筆查詢的詳細格式，關聯展開為 Project 摘要
// swagger:model api.NaverDetailResponse
type NaverDetailResponse struct {
	NaverResponse
	Projects []ProjectResponse `json:"projects"`
}

func NewNaverResponse(n model.Naver) NaverResponse {
	return NaverResponse{
		ID:            n.ID,
		Name:          n.Name,
		Birthdate:     n.Birthdate.Format(DateLayout),
		AdmissionDate: n.AdmissionDate.Format(DateLayout),
		JobRole:       n.JobRole,
	}
}

func NewNaverCreateResponse(n model.Naver) NaverCreateResponse {
	ids := make([]int, 0, len(n.Projects))
	for _, p := range n.Projects {
		ids = append(ids, p.ID)
	}
	return NaverCreateResponse{NaverResponse: NewNaverResponse(n), Projects: ids}
}

func NewNaverDetailResponse(n model.Naver) NaverDetailResponse {
	projects := make([]ProjectResponse, 0, len(n.Projects))
	for _, p := range n.Projects {
		projects = append(projects, NewProjectResponse(p))
	}
	return NaverDetailResponse{NaverResponse: NewNaverResponse(n), Projects: projects}
}
