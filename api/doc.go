// Package api provides the request and response types for the GuardGate API.
//
// # API Overview
//
// GuardGate provides a RESTful API for:
//   - Text validation against a configurable list of guardrails
//   - Validator catalog discovery
//   - Health monitoring and metrics
//
// # Authentication
//
// When API keys are configured, endpoints require the X-API-Key header:
//
//	X-API-Key: your-api-key
//
// # Base URL
//
// The default base URL for the API is:
//
//	http://localhost:8080
package api
