// Package model holds the GORM table structs of the phonebook schema.
package model

// All returns every model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&EntryModel{},
		&GroupModel{},
		&EntryGroupModel{},
		&NumberModel{},
		&RatingModel{},
	}
}
