package valuedomain

import (
	"context"

	"github.com/pkg/errors"
)

type client struct {
	api API
}

// NewClient creates a Value-Domain DNS API client for the given access
// token. See https://www.value-domain.com/vdapi/ for obtaining one.
func NewClient(token string, opts ...Option) Client {
	return &client{api: newWrapper(token, opts...)}
}

// FetchZone retrieves the domain's DNS configuration and parses the zone
// blob into a snapshot. The vendor is not trusted to scope the response
// correctly: a response for a different domain fails with ErrDomainNotFound.
func (c *client) FetchZone(ctx context.Context, domain string) (*ZoneSnapshot, error) {
	res, err := c.api.GetDNS(ctx, domain)
	if err != nil {
		return nil, errors.Wrap(err, "get dns")
	}

	if res.DomainName != domain {
		return nil, errors.Wrapf(ErrDomainNotFound, "requested %q, got %q", domain, res.DomainName)
	}

	records, err := ParseZone(res.Records)
	if err != nil {
		return nil, errors.Wrap(err, "parse zone")
	}

	ttl, err := res.TTL.Int64()
	if err != nil {
		return nil, errors.Wrap(err, "parse ttl")
	}

	return &ZoneSnapshot{
		DomainID: res.DomainID.String(),
		Domain:   res.DomainName,
		TTL:      int(ttl),
		NSType:   res.NSType,
		Records:  records,
	}, nil
}

// StoreZone overwrites the domain's entire DNS configuration with the
// snapshot. The vendor offers no per-record primitive, so concurrent
// writers to the same domain can silently clobber each other.
func (c *client) StoreZone(ctx context.Context, domain string, snapshot *ZoneSnapshot) error {
	err := c.api.PutDNS(ctx, domain, DNSUpdate{
		NSType:  snapshot.NSType,
		Records: snapshot.Records.Serialize(),
		TTL:     snapshot.TTL,
	})

	return errors.Wrap(err, "put dns")
}
