package repository

// Models lists the GORM models owned by this package, in migration order.
// The airline_airports join table is created from the many2many tags.
func Models() []interface{} {
	return []interface{}{&Airports{}, &Airlines{}}
}
