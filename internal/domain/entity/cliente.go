package entity

// Cliente de la empresa; se oculta con borrado lógico, nunca se elimina.
type Cliente struct {
	ID        int64
	Nombre    string
	Telefono  string
	Direccion string
	Oculto    bool
}

// Proveedor de mercadería.
type Proveedor struct {
	ID        int64
	Nombre    string
	Telefono  string
	Email     string
	Direccion string
	Oculto    bool
}
