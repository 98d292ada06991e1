package dto

type CreateWarehouseInput struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type UpdateWarehouseInput struct {
	ID       int     `json:"-"`
	Code     *string `json:"code"`
	Name     *string `json:"name"`
	Location *string `json:"location"`
}
