// Package config loads revu settings from the environment.
//
// The endpoint settings LLM_API_URL, LLM_API_KEY, and LLM_MODEL_NAME are
// required; call parameters (timeout, temperature, token bound), chunking
// bounds, and the retry budget all have defaults. Malformed numeric values
// are ignored in favor of the default rather than failing the run.
package config
