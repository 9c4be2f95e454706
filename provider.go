package valuedomain

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config describes a Value-Domain account scope.
type Config struct {
	// Token is the Value-Domain API access token.
	Token string `env:"VALUEDOMAIN_TOKEN,required"`
	// Domain is the managed zone's domain name, without a trailing dot.
	Domain string `env:"VALUEDOMAIN_DOMAIN,required"`
	// TTL in seconds overrides the zone TTL on every write when positive.
	TTL int `env:"VALUEDOMAIN_TTL"`
}

// Provider manages DNS records of a single Value-Domain zone.
//
// The vendor stores the whole zone as one text blob and only supports
// replacing it in full, so every mutation here is fetch snapshot → pure
// in-memory transform → store snapshot. The read-modify-write cycle is not
// atomic: two concurrent operations against the same domain can race and
// silently clobber each other's changes. The vendor offers no versioning
// or locking to mitigate this.
type Provider struct {
	client Client
	domain string
	ttl    int
	logger *slog.Logger
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithProviderLogger sets a custom logger.
func WithProviderLogger(logger *slog.Logger) ProviderOption {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider creates a Provider for the configured domain.
func NewProvider(client Client, config Config, opts ...ProviderOption) *Provider {
	p := &Provider{
		client: client,
		domain: strings.TrimSuffix(config.Domain, "."),
		ttl:    config.TTL,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// NewProviderFromEnv creates a Provider from VALUEDOMAIN_* environment
// variables.
func NewProviderFromEnv(opts ...ProviderOption) (*Provider, error) {
	config, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.Wrap(err, "parse env")
	}

	return NewProvider(NewClient(config.Token), config, opts...), nil
}

// Authenticate validates that the configured domain exists remotely and is
// the one the vendor answers for. It fails with ErrDomainNotFound otherwise.
// No state is captured: TTL and nameserver group travel inside each
// operation's snapshot.
func (p *Provider) Authenticate(ctx context.Context) error {
	_, err := p.client.FetchZone(ctx, p.domain)
	return errors.Wrap(err, "fetch zone")
}

// ListRecords returns the zone's records matching the filter, in zone
// order. A zero filter returns everything. Record IDs are recomputed from
// the current contents on every call.
func (p *Provider) ListRecords(ctx context.Context, filter Filter) ([]Record, error) {
	return p.listRecords(ctx, p.domain, filter)
}

// CreateRecord adds a record unless an identical one already exists. It
// returns true in both cases; only an actual insertion triggers a write.
func (p *Provider) CreateRecord(ctx context.Context, rtype, name, content string) (bool, error) {
	if _, err := p.createRecord(ctx, p.domain, rtype, name, content); err != nil {
		return false, err
	}

	return true, nil
}

// UpdateRecord replaces the record located by the filter's identifier,
// type and name, preserving its zone position, or appends a new one when
// nothing matches. Type, name and content must all be given.
func (p *Provider) UpdateRecord(ctx context.Context, filter Filter) (bool, error) {
	return p.updateRecord(ctx, p.domain, filter)
}

// DeleteRecord removes every record matching the filter and returns
// whether anything was actually removed. Removing nothing is not an error.
func (p *Provider) DeleteRecord(ctx context.Context, filter Filter) (bool, error) {
	return p.deleteRecord(ctx, p.domain, filter)
}

func (p *Provider) listRecords(ctx context.Context, domain string, filter Filter) ([]Record, error) {
	snapshot, err := p.client.FetchZone(ctx, domain)
	if err != nil {
		return nil, errors.Wrap(err, "fetch zone")
	}

	if filter.Name != "" {
		filter.Name = relativeName(filter.Name, domain)
	}

	var records []Record
	for _, t := range snapshot.Records.FilterAll(filter) {
		records = append(records, Record{
			ID:      t.Identifier(),
			Type:    strings.ToUpper(t.Type),
			Name:    fullName(t.Name, domain),
			TTL:     time.Duration(snapshot.TTL) * time.Second,
			Content: t.Content,
		})
	}

	p.logger.Debug("list records", "domain", domain, "count", len(records))
	return records, nil
}

func (p *Provider) createRecord(ctx context.Context, domain, rtype, name, content string) (bool, error) {
	snapshot, err := p.client.FetchZone(ctx, domain)
	if err != nil {
		return false, errors.Wrap(err, "fetch zone")
	}

	record := Triplet{
		Type:    strings.ToLower(rtype),
		Name:    relativeName(name, domain),
		Content: bindFormatTarget(rtype, content),
	}

	records, inserted := snapshot.Records.InsertIfAbsent(record)
	if !inserted {
		p.logger.Debug("record already exists", "domain", domain, "type", record.Type, "name", record.Name)
		return false, nil
	}

	snapshot.Records = records
	if err := p.store(ctx, domain, snapshot); err != nil {
		return false, err
	}

	p.logger.Debug("create record", "domain", domain, "type", record.Type, "name", record.Name)
	return true, nil
}

func (p *Provider) updateRecord(ctx context.Context, domain string, filter Filter) (bool, error) {
	if filter.Type == "" || filter.Name == "" || filter.Content == "" {
		return false, ErrInvalidArguments
	}

	snapshot, err := p.client.FetchZone(ctx, domain)
	if err != nil {
		return false, errors.Wrap(err, "fetch zone")
	}

	name := relativeName(filter.Name, domain)
	record := Triplet{
		Type:    strings.ToLower(filter.Type),
		Name:    name,
		Content: bindFormatTarget(filter.Type, filter.Content),
	}

	snapshot.Records = snapshot.Records.Upsert(Filter{
		ID:   filter.ID,
		Type: record.Type,
		Name: name,
	}, record)

	if err := p.store(ctx, domain, snapshot); err != nil {
		return false, err
	}

	p.logger.Debug("update record", "domain", domain, "type", record.Type, "name", record.Name)
	return true, nil
}

func (p *Provider) deleteRecord(ctx context.Context, domain string, filter Filter) (bool, error) {
	snapshot, err := p.client.FetchZone(ctx, domain)
	if err != nil {
		return false, errors.Wrap(err, "fetch zone")
	}

	if filter.Name != "" {
		filter.Name = relativeName(filter.Name, domain)
	}
	if filter.Content != "" {
		filter.Content = bindFormatTarget(filter.Type, filter.Content)
	}

	records, removed := snapshot.Records.DeleteMatching(filter)
	if removed == 0 {
		p.logger.Debug("delete record", "domain", domain, "removed", 0)
		return false, nil
	}

	snapshot.Records = records
	if err := p.store(ctx, domain, snapshot); err != nil {
		return false, err
	}

	p.logger.Debug("delete record", "domain", domain, "removed", removed)
	return true, nil
}

func (p *Provider) store(ctx context.Context, domain string, snapshot *ZoneSnapshot) error {
	if p.ttl > 0 {
		snapshot.TTL = p.ttl
	}

	return errors.Wrap(p.client.StoreZone(ctx, domain, snapshot), "store zone")
}
