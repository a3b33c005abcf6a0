// Package llm is the generation boundary: a minimal client for any
// OpenAI-compatible chat completions endpoint. The rest of the app sees
// only the Generator interface, a single call from topic to raw text;
// parsing that text into cards happens elsewhere.
package llm
