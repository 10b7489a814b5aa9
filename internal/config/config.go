package config

import "github.com/spf13/viper"

// Connection defaults for a local Neo4j instance.
const (
	DefaultURI      = "bolt://localhost:7687"
	DefaultUsername = "neo4j"
	DefaultPassword = "neo4j"
)

// Neo4j holds graph store connection settings.
type Neo4j struct {
	URI      string
	Username string
	Password string
}

// Server holds HTTP API settings.
type Server struct {
	Addr           string
	APIKey         string // empty disables auth
	MaxUploadBytes int64
}

// Config is the resolved runtime configuration for one command
// invocation. Values resolve flag > environment > default; flag
// bindings are registered by the CLI, everything else by Bind.
type Config struct {
	Neo4j  Neo4j
	Server Server
}

// Bind registers environment bindings and defaults on v.
func Bind(v *viper.Viper) {
	v.SetDefault("neo4j.uri", DefaultURI)
	v.SetDefault("neo4j.username", DefaultUsername)
	v.SetDefault("neo4j.password", DefaultPassword)
	v.SetDefault("server.addr", ":8090")
	v.SetDefault("server.max_upload_bytes", int64(10<<20)) // 10MB

	_ = v.BindEnv("neo4j.uri", "NEO4J_URI")
	_ = v.BindEnv("neo4j.username", "NEO4J_USERNAME")
	_ = v.BindEnv("neo4j.password", "NEO4J_PASSWORD")
	_ = v.BindEnv("server.addr", "MDGRAPH_ADDR")
	_ = v.BindEnv("server.api_key", "MDGRAPH_API_KEY")
	_ = v.BindEnv("server.max_upload_bytes", "MDGRAPH_MAX_UPLOAD_BYTES")
}

// Load materializes the configuration from v.
func Load(v *viper.Viper) Config {
	return Config{
		Neo4j: Neo4j{
			URI:      v.GetString("neo4j.uri"),
			Username: v.GetString("neo4j.username"),
			Password: v.GetString("neo4j.password"),
		},
		Server: Server{
			Addr:           v.GetString("server.addr"),
			APIKey:         v.GetString("server.api_key"),
			MaxUploadBytes: v.GetInt64("server.max_upload_bytes"),
		},
	}
}
