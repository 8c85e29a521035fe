package port

// ConfigSchemaProvider provides configuration schema information.
type ConfigSchemaProvider interface {
	// JSONSchema returns the configuration file schema as indented JSON.
	JSONSchema() ([]byte, error)
}
