// Package binder decodes HTTP request bodies into typed request structs.
//
// JSON requires an application/json content type, caps the body size,
// rejects unknown fields and trailing data, and wraps every failure with a
// sentinel error so handlers can map it to a 400 or 415 response.
package binder
