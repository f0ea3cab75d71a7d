package models

// Paraje is one census point of the pjes_censal_2022 layer.
// The table is loaded externally from INDEC shapefiles; only id_estado
// is ever written by this API.
type Paraje struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Nam      string `gorm:"column:nam" json:"nombre"`
	IDEstado int64  `gorm:"column:id_estado" json:"id_estado"`
	CMU      string `gorm:"column:CMU" json:"CMU"`
	CodDepto string `gorm:"column:COD_DEPTO" json:"COD_DEPTO"`

	// Geometry stored in PostGIS as a POINT (SRID 4326); serialized
	// through ST_AsGeoJSON, never read into Go.
	Geom []byte `gorm:"column:geom;type:geometry(Point,4326)" json:"-"`
}

func (Paraje) TableName() string {
	return "pjes_censal_2022"
}
