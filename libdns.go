package valuedomain

import (
	"context"
	"strings"

	"github.com/libdns/libdns"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// The libdns surface. Each call honors the zone argument it is given
// (trailing dot trimmed) rather than the configured domain, so one Provider
// can serve any zone its token has access to.

func (p *Provider) ListZones(ctx context.Context) ([]libdns.Zone, error) {
	if err := p.Authenticate(ctx); err != nil {
		return nil, err
	}

	return []libdns.Zone{{Name: p.domain + "."}}, nil
}

func (p *Provider) GetRecords(ctx context.Context, zone string) ([]libdns.Record, error) {
	records, err := p.listRecords(ctx, trimZone(zone), Filter{})
	if err != nil {
		return nil, err
	}

	result := make([]libdns.Record, len(records))
	for i, record := range records {
		result[i] = record.RR()
	}

	return result, nil
}

func (p *Provider) AppendRecords(ctx context.Context, zone string, recs []libdns.Record) (result []libdns.Record, errs error) {
	domain := trimZone(zone)
	for _, rec := range recs {
		rr := rec.RR()
		inserted, err := p.createRecord(ctx, domain, rr.Type, rr.Name, rr.Data)
		if multierr.AppendInto(&errs, errors.Wrapf(err, "create %s %s", rr.Type, rr.Name)) {
			continue
		}

		if inserted {
			result = append(result, rec)
		}
	}

	return
}

func (p *Provider) SetRecords(ctx context.Context, zone string, recs []libdns.Record) (result []libdns.Record, errs error) {
	domain := trimZone(zone)
	for _, rec := range recs {
		rr := rec.RR()
		_, err := p.updateRecord(ctx, domain, Filter{
			Type:    rr.Type,
			Name:    rr.Name,
			Content: rr.Data,
		})

		if !multierr.AppendInto(&errs, errors.Wrapf(err, "update %s %s", rr.Type, rr.Name)) {
			result = append(result, rec)
		}
	}

	return
}

func (p *Provider) DeleteRecords(ctx context.Context, zone string, recs []libdns.Record) (result []libdns.Record, errs error) {
	domain := trimZone(zone)
	for _, rec := range recs {
		rr := rec.RR()
		removed, err := p.deleteRecord(ctx, domain, Filter{
			Type:    rr.Type,
			Name:    rr.Name,
			Content: rr.Data,
		})

		if multierr.AppendInto(&errs, errors.Wrapf(err, "delete %s %s", rr.Type, rr.Name)) {
			continue
		}

		if removed {
			result = append(result, rec)
		}
	}

	return
}

func trimZone(zone string) string {
	return strings.TrimSuffix(zone, ".")
}

var (
	_ libdns.RecordGetter   = (*Provider)(nil)
	_ libdns.RecordSetter   = (*Provider)(nil)
	_ libdns.RecordAppender = (*Provider)(nil)
	_ libdns.RecordDeleter  = (*Provider)(nil)
	_ libdns.ZoneLister     = (*Provider)(nil)
)
