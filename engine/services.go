package engine

import (
	"fmt"
	"reflect"
)

// Services is an explicitly constructed registry for engine-wide shared
// objects (particle system, physics system, audio, ...). It replaces
// module-level singletons so the simulation core stays testable in isolation:
// construct one, register what the game needs, and pass it by reference.
type Services struct {
	entries map[reflect.Type]any
}

// NewServices creates an empty service registry.
func NewServices() *Services {
	return &Services{entries: make(map[reflect.Type]any)}
}

// RegisterService stores value under its type T, replacing any previous
// registration.
func RegisterService[T any](s *Services, value T) {
	s.entries[reflect.TypeFor[T]()] = value
}

// GetService returns the registered value of type T.
func GetService[T any](s *Services) (T, bool) {
	v, ok := s.entries[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// RequireService returns the registered value of type T, panicking if no such
// service was registered. Missing services are configuration errors.
func RequireService[T any](s *Services) T {
	v, ok := GetService[T](s)
	if !ok {
		panic(fmt.Sprintf("service %s not registered", reflect.TypeFor[T]()))
	}
	return v
}
