package model

type Warehouse struct {
	ID       int    `json:"id" db:"id"`
	Code     string `json:"code" db:"code"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location" db:"location"`
}

func FindWarehouse(warehouses []Warehouse, id int) (*Warehouse, int) {
	for i := range warehouses {
		if warehouses[i].ID == id {
			return &warehouses[i], i
		}
	}
	return nil, -1
}
