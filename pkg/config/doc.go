// Package config fills configuration structs from environment variables
// using github.com/caarlos0/env/v11, optionally reading dotenv files with
// github.com/joho/godotenv first.
//
// Structs declare their variables with env and envDefault tags; nested
// structs may carry an envPrefix. A prefix passed to Load namespaces the
// whole tree, which lets several binaries share one environment.
package config
