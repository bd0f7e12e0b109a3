package model

type Dealer struct {
	ID   string `json:"id"`
	Name string `json:"dealer_name"`
}

type Branch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
