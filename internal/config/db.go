package config

// Supported gorm engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// DB holds the database configuration settings.
// For the sqlite engine Name is the path of the database file.
type DB struct {
	GormEngine string `validate:"oneof=sqlite mysql postgres"`
	Name       string `validate:"required"`
	Host       string
	Port       int
	User       string
	Password   string
	Extras     string
}
