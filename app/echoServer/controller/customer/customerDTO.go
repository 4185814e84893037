package customer

import "github.com/ulrichb237/library2/model"

type CustomerReq struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Job       string `json:"job"`
	Address   string `json:"address"`
	Email     string `json:"email" validate:"required,email"`
}

func (r CustomerReq) ToModel() *model.Customer {
	return &model.Customer{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Job:       r.Job,
		Address:   r.Address,
		Email:     r.Email,
	}
}
