package model

// All lists every table owned by the service, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Book{},
		&Category{},
		&Record{},
		&ActivityLog{},
	}
}
