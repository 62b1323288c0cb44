package models

// All lists the models in migration order.
func All() []interface{} {
	return []interface{}{
		&Club{},
		&Program{},
		&Team{},
		&User{},
		&Attendance{},
		&Evaluation{},
	}
}
