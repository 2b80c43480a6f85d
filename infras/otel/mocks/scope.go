package mocks

import "hotelpos/infras/otel"

// noopScope discards everything, for tests that only care about the code under the span.
type noopScope struct{}

func (noopScope) End() {}
func (noopScope) TraceError(error) {}
func (noopScope) TraceIfError(error) {}
func (noopScope) AddEvent(string) {}
func (noopScope) SetAttribute(string, any) {}
func (noopScope) SetAttributes(map[string]any) {}
func (noopScope) TraceID() string { return "" }

func NewScope() otel.Scope {
	return noopScope{}
}
