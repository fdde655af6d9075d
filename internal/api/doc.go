// Package api implements the HTTP transport and response envelope
// decoding for the Kegweb web API.
//
// Every response is a JSON envelope carrying exactly one of an "object"
// (singular result), an "objects" array (plural result), or an "error"
// description that maps onto the error kind taxonomy in the apierrors
// package.
package api
