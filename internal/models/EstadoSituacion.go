package models

// EstadoSituacion is the review-status catalog for parajes.
// Unlike the census layers this table is owned by the API: it is
// auto-migrated and seeded at startup.
type EstadoSituacion struct {
	IDEstado     int64  `gorm:"primaryKey;column:id_estado" json:"id_estado"`
	NombreEstado string `gorm:"column:nombre_estado" json:"nombre_estado"`
}

func (EstadoSituacion) TableName() string {
	return "estado_situacion"
}

// DefaultEstados are seeded when the catalog is empty. Parajes with no
// matching row are reported as "No Revisado" by the KPI queries.
var DefaultEstados = []EstadoSituacion{
	{IDEstado: 1, NombreEstado: "Corresponde"},
	{IDEstado: 2, NombreEstado: "No Revisado"},
	{IDEstado: 3, NombreEstado: "No Corresponde"},
}
