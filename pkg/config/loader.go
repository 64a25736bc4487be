package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry is the parse result of one config type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache        sync.Map // type name -> *entry
	dotenvLoaded sync.Once
)

// Load populates v from the environment. The default .env file, when
// present, is read before the first parse. Each config type is parsed once;
// later calls copy the cached value. A failed parse is cached too, so callers
// see a consistent error until Reset.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvLoaded.Do(func() {
		// A missing .env is normal outside local development
		_ = godotenv.Load()
	})

	e, _ := cache.LoadOrStore(typeKey[T](), &entry{})
	ent := e.(*entry)
	ent.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = cfg
	})

	if ent.err != nil {
		return ent.err
	}
	*v = ent.value.(T)
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached config. Meant for tests.
func Reset() {
	cache.Clear()
}

func typeKey[T any]() string {
	return reflect.TypeFor[T]().String()
}
