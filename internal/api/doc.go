// Package api provides the HTTP handlers of the Mesto API together with
// the mapping from internal errors to HTTP statuses and safe client
// messages. Handlers dispatch at most one response per request: the first
// classified error wins and no response-producing code runs after it.
package api
