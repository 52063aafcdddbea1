package view_models

type CustomField struct {
	ID         int64  `json:"id,omitempty"`
	Key        string `json:"key"`
	Label      string `json:"label"`
	InputType  string `json:"inputType"`
	Required   bool   `json:"required"`
	ShowInList bool   `json:"showInList"`
	Active     bool   `json:"active"`
	CreatedAt  int64  `json:"createdAt,omitempty"`
	UpdatedAt  int64  `json:"updatedAt,omitempty"`
}
