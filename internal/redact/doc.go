// Package redact removes secrets from diff text before it is sent to the
// completion endpoint.
//
// Detection uses regex heuristics covering common secret shapes: API
// keys, JWTs, private key blocks, AWS access key IDs and secret access
// keys, bearer tokens, and provider-specific tokens (Anthropic, OpenAI,
// GitHub, Slack). Redaction runs on the whole diff before chunking so
// every fragment the remote service sees is already scrubbed.
package redact
