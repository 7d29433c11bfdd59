// Package template exposes the public contracts for the template input side
// of the engine: sources, documents, the loader, the parser, and the taxonomy
// parser. Implementations live under internal/template and internal/taxonomy
// so the line-scanner details stay hidden from consumers.
package template
