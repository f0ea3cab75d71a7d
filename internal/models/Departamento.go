package models

// Departamento is one department boundary of the dpto_chaco layer.
// In1 is the department code referenced by GobiernoLocal.CodDepto.
type Departamento struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Nam  string `gorm:"column:nam" json:"nombre"`
	In1  string `gorm:"column:in1" json:"codigo"`
	Geom []byte `gorm:"column:geom;type:geometry(MultiPolygon,4326)" json:"-"`
}

func (Departamento) TableName() string {
	return "dpto_chaco"
}
