package dto

type CrearProveedorRequest struct {
	Nombre        string  `json:"nombre" validate:"required,min=2"`
	RFC           *string `json:"rfc"`
	TipoProveedor *string `json:"tipo_proveedor"`
	Telefono      *string `json:"telefono"`
	Email         *string `json:"email"  validate:"omitempty,email"`
	Direccion     *string `json:"direccion"`
}

type ActualizarProveedorRequest struct {
	Nombre        *string `json:"nombre" validate:"omitempty,min=2"`
	RFC           *string `json:"rfc"`
	TipoProveedor *string `json:"tipo_proveedor"`
	Telefono      *string `json:"telefono"`
	Email         *string `json:"email"  validate:"omitempty,email"`
	Direccion     *string `json:"direccion"`
	Activo        *bool   `json:"activo"`
}

type ProveedorResponse struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	RFC           *string `json:"rfc"`
	TipoProveedor *string `json:"tipo_proveedor"`
	Telefono      *string `json:"telefono"`
	Email         *string `json:"email"`
	Direccion     *string `json:"direccion"`
	Activo        bool    `json:"activo"`
}
