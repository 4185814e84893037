// model/category.go
package model

type Category struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
