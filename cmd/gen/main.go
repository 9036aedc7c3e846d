// Command gen writes gorm/gen query helpers for the phonebook persistence models.
package main

import (
	"phonebook/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	generator := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	generator.ApplyBasic(model.All()...)

	generator.Execute()
}
