// grammar/parser/mock_gen.go
package parser

//go:generate mockgen -source=./diagnostics.go -destination=../../internal/mocks/mock_sink.go -package=mocks Sink
