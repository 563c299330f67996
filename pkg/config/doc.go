// Package config loads typed configuration structs from environment
// variables, wrapping github.com/caarlos0/env and github.com/joho/godotenv
// behind a small cached API.
//
// Each configuration type is parsed once per process and served from an
// in-memory cache afterwards, so independent packages can each call Load
// for their own config without coordinating.
//
// # Usage
//
// Annotate a struct with `env` tags — several packages in this module ship
// ready-made ones (ttlcache.Config, progressive.Config):
//
//	var cacheCfg ttlcache.Config
//	if err := config.Load(&cacheCfg); err != nil {
//	    return err
//	}
//	cache, err := ttlcache.New[string, []byte](cacheCfg)
//
// A default .env file in the working directory is picked up automatically
// before the first parse; additional files load explicitly:
//
//	if err := config.LoadEnv(".env.local", ".env.defaults"); err != nil { … }
//
// # Error Handling
//
// Sentinel errors (ErrParse, ErrEnvFileLoad, ErrNilPointer) wrap the
// underlying library errors and match with errors.Is. MustLoad panics on
// failure and is meant for composition-root configuration the process
// cannot run without.
//
// # Testing
//
// Reset clears the cache so tests that change the environment (t.Setenv)
// observe fresh values on the next Load.
package config
