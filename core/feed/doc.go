// Package feed is the read-only client for the backend product API.
//
// The backend lists products per category at GET {base_url}/products?category=<name>,
// either as a bare JSON array or wrapped as {"data": [...]}. Decoding is tolerant:
// numbers sent as strings, codes sent as numbers and nulls all map onto
// reconcile.SourceRecord without failing the fetch. Non-2xx responses surface as *APIError.
package feed
