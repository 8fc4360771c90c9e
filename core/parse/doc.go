// Package parse provides lenient JSON decoding for structured data carried
// inside raw LLM text output. Because language models frequently emit JSON
// with minor syntax damage, the package applies automatic JSON repair and a
// retry before falling back to a clear error.
//
// The main entry point is the generic [Decode] function.
package parse
