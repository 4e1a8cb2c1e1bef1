package outbound

import "context"

// UrlValidatorPort probes a URL for reachability before a full download is
// committed. A negative verdict is data, not a fault: transport failures and
// error statuses all map to false.
type UrlValidatorPort interface {
	Validate(ctx context.Context, url string) bool
}
