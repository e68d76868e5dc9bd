// Package llm implements the chat-completion client.
//
// The client speaks the OpenAI-compatible /chat/completions wire format
// with bearer-token auth. Each call runs an attempt loop: network errors
// and a fixed set of transient HTTP statuses (408, 409, 425, 429, 500,
// 502, 503, 504) are retried with exponential backoff and jitter, a
// Retry-After header can lengthen the wait, and everything else fails
// terminally. A 200 response whose body is not valid JSON is a contract
// violation and is never retried.
//
// Retry decisions are data, not control flow: each attempt reduces to an
// attemptResult (text, error, transient flag, server-requested wait) that
// the loop in [Client.Complete] inspects.
package llm
