package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	loaded map[string]any

	defaultEnvOnce sync.Once
)

func init() {
	loaded = make(map[string]any)
}

// LoadEnv loads the named .env files into the process environment before
// any parsing happens. Without arguments it loads the default .env from the
// working directory. Missing files are an error here, unlike the implicit
// default load.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrEnvFileLoad, err)
	}
	return nil
}

// Load populates v from the process environment using `env` field tags.
// Each configuration type is parsed at most once per process; later calls
// for the same type return the cached copy, so packages can load their own
// config independently without re-reading the environment.
//
// The default .env file is loaded implicitly before the first parse, if it
// exists.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvOnce.Do(func() {
		// Missing .env is fine; explicit files go through LoadEnv.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParse, err)
	}

	// Cached by value so later callers cannot mutate each other's copy.
	loaded[key] = *v
	return nil
}

// MustLoad is Load for configuration the process cannot start without; it
// panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load %s: %v", typeName[T](), err))
	}
}

// Reset drops every cached configuration so the next Load re-parses the
// environment. Intended for tests that mutate env vars between cases.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	loaded = make(map[string]any)
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
