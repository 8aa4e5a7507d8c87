package api

// UpdateNaverRequest PATCH 部分更新，只變更有帶的欄位
// projects 有帶時整組替換，省略時維持原關聯
// swagger:model api.UpdateNaverRequest
type UpdateNaverRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	Birthdate     *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	AdmissionDate *string `json:"admission_date" validate:"omitempty,datetime=2006-01-02"`
	JobRole       *string `json:"job_role" validate:"omitempty,min=1"`
	Projects      *[]int  `json:"projects"`
}
