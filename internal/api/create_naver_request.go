package api

// CreateNaverRequest 建立 Naver 的請求格式，PUT 全量更新共用此格式
// projects 為關聯 Project 的 id 清單；全量更新時省略代表清空關聯
// swagger:model api.CreateNaverRequest
type CreateNaverRequest struct {
	Name          string `json:"name" validate:"required" example:"Fulano de Tal"`
	Birthdate     string `json:"birthdate" validate:"required,datetime=2006-01-02" example:"1992-02-02"`
	AdmissionDate string `json:"admission_date" validate:"required,datetime=2006-01-02" example:"2020-09-11"`
	JobRole       string `json:"job_role" validate:"required" example:"Designer"`
	Projects      []int  `json:"projects"`
}
