package dto

type BitacoraFilter struct {
	Entidad string `form:"entidad"`
	Accion  string `form:"accion" validate:"omitempty,oneof=crear actualizar eliminar"`
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type BitacoraResponse struct {
	ID        string  `json:"id"`
	Usuario   *string `json:"usuario"`
	Accion    string  `json:"accion"`
	Entidad   string  `json:"entidad"`
	EntidadID *string `json:"id_entidad"`
	Detalle   *string `json:"detalle"`
	CreatedAt string  `json:"created_at"`
}

type BitacoraListResponse struct {
	Data  []BitacoraResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
