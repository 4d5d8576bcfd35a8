// Package api is the HTTP client of the forest admin backend.
//
// Every endpoint follows one call contract: a path, an optional method
// (GET by default), query params, an optional JSON or multipart body and an
// optional upload progress callback. Every response is a JSON object that
// carries RESULT (boolean) or RESULT_CODE ("00" on success).
package api
