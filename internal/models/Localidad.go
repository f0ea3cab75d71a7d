package models

// Localidad is one census locality of the loc_censal_2022 layer.
type Localidad struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Nam  string `gorm:"column:nam" json:"nombre"`
	Geom []byte `gorm:"column:geom;type:geometry(Point,4326)" json:"-"`
}

func (Localidad) TableName() string {
	return "loc_censal_2022"
}
