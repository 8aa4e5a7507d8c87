package api

// CreateProjectRequest 建立 Project 的請求格式，PUT 全量更新共用此格式
// navers 為關聯 Naver 的 id 清單；全量更新時省略代表清空關聯
// swagger:model api.CreateProjectRequest
type CreateProjectRequest struct {
	Name   string `json:"name" validate:"required" example:"New Website Prototype"`
	Navers []int  `json:"navers"`
}
