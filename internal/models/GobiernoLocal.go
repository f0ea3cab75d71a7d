package models

// GobiernoLocal is one local-government unit of the gob_locales_2022 layer.
// CMU links parajes to their governing unit; COD_DEPTO links the unit to
// its department (dpto_chaco.in1).
type GobiernoLocal struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Nam      string `gorm:"column:nam" json:"nombre"`
	CMU      string `gorm:"column:CMU" json:"CMU"`
	CodDepto string `gorm:"column:COD_DEPTO" json:"COD_DEPTO"`
	Geom     []byte `gorm:"column:geom;type:geometry(MultiPolygon,4326)" json:"-"`
}

func (GobiernoLocal) TableName() string {
	return "gob_locales_2022"
}
