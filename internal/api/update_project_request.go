package api

// UpdateProjectRequest PATCH 部分更新，只變更有帶的欄位
// navers 有帶時整組替換，省略時維持原關聯
// swagger:model api.UpdateProjectRequest
type UpdateProjectRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Navers *[]int  `json:"navers"`
}
