package employee

// Employee is a directory entry. The core only reads it: name and
// department are snapshotted onto attendance and request records at write
// time so later directory changes never rewrite history.
type Employee struct {
	ID         string  `bson:"_id"`
	EmployeeID string  `bson:"employee_id"` // 8-digit punch-clock identifier
	LegacyID   *string `bson:"legacy_id,omitempty"`
	Name       string  `bson:"name"`
	Department string  `bson:"department"`
	Active     bool    `bson:"active"`
}
