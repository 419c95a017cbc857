package main

import (
	"nms/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AddressModel{},
		model.CountryModel{},
		model.CityModel{},
		model.CompanyModel{},
		model.RoleModel{},
		model.UserModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
