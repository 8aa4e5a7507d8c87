package api

import "navedex/internal/model"

// ProjectResponse 列表用的摘要格式，不含關聯
// swagger:model api.ProjectResponse
type ProjectResponse struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"New Website Prototype"`
}

// ProjectCreateResponse 建立/更新後的回應，關聯以 id 清單表示
// swagger:model api.ProjectCreateResponse
type ProjectCreateResponse struct {
	ProjectResponse
	Navers []int `json:"navers"`
}

// ProjectDetailResponse 單筆查詢的詳細格式，關聯展開為 Naver 摘要
// swagger:model api.ProjectDetailResponse
type ProjectDetailResponse struct {
	ProjectResponse
	Navers []NaverResponse `json:"navers"`
}

func NewProjectResponse(p model.Project) ProjectResponse {
	return ProjectResponse{ID: p.ID, Name: p.Name}
}

func NewProjectCreateResponse(p model.Project) ProjectCreateResponse {
	ids := make([]int, 0, len(p.Navers))
	for _, n := range p.Navers {
		ids = append(ids, n.ID)
	}
	return ProjectCreateResponse{ProjectResponse: NewProjectResponse(p), Navers: ids}
}

func NewProjectDetailResponse(p model.Project) ProjectDetailResponse {
	navers := make([]NaverResponse, 0, len(p.Navers))
	for _, n := range p.Navers {
		navers = append(navers, NewNaverResponse(n))
	}
	return ProjectDetailResponse{ProjectResponse: NewProjectResponse(p), Navers: navers}
}
