// Package metric provides Prometheus metrics for edgeauth-token.
//
// The CLI runs once per invocation, so metrics are not served over HTTP.
// They are written to a file in the Prometheus text format for the
// node_exporter textfile collector:
//
//	edgeauth-token generate --acl '/*' --metrics-textfile /var/lib/node_exporter/edgeauth.prom
//
// Metrics:
//
//   - edgeauth_tokens_issued_total{algorithm}
//   - edgeauth_token_failures_total{code}
package metric
