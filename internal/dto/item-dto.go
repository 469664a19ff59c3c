package dto

type ItemCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description"`
}

type ItemResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type ItemDeleteResponse struct {
	Deleted uint `json:"deleted"`
}
