package models

// All lists the models that own a table, in migration order
func All() []interface{} {
	return []interface{}{
		&User{},
		&Project{},
		&ProjectUser{},
		&PendingUser{},
		&ProjectImage{},
	}
}
