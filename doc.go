// Package hubrl reports Docker Hub's image-pull rate limit.
//
// Docker Hub throttles image pulls per account (or per IP for anonymous
// pulls) and exposes the current quota in the response headers of any
// manifest request. hubrl acquires a short-lived bearer token from the
// Hub token authority and performs a single probe against a fixed,
// content-stable manifest to read those headers.
//
// Note: the probe itself counts as a pull, so the reported remaining
// count is always one lower than it was just before the check.
//
// Anonymous check:
//
//	client, _ := hubrl.New()
//	limit, err := client.Check(ctx)
//	fmt.Println(limit) // e.g. 97/100
//
// With an account:
//
//	client, _ := hubrl.New(hubrl.WithBasicAuth("someuser", "somepass"))
//	limit, err := client.Check(ctx)
//
// Failures carry a Kind (connection, parsing, over limit, auth) that
// callers can switch on:
//
//	limit, err := client.Check(ctx)
//	if hubrl.KindOf(err) == hubrl.KindOverLimit {
//	    // quota already exhausted
//	}
//
// Each check is independent and stateless: one token request followed
// by one probe, no caching, no retries.
package hubrl
